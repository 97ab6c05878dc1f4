package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/models"
)

func (a *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := models.Validate(req); err != nil {
		return err
	}
	return client.Exec(ctx, a.client, client.Request{
		Method: http.MethodPost,
		Path:   authBase + "/change-password",
		Body:   req,
	})
}

// ForgotPassword asks the backend to mail a reset link to email.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	req := models.ForgotPasswordRequest{Email: email}
	if err := models.Validate(req); err != nil {
		return err
	}
	return client.Exec(ctx, a.client, client.Request{
		Method: http.MethodPost,
		Path:   authBase + "/forgot-password",
		Body:   req,
	})
}

func (a *AuthService) ResetPassword(ctx context.Context, token, next string) error {
	req := models.ResetPasswordRequest{Token: token, NewPassword: next}
	if err := models.Validate(req); err != nil {
		return err
	}
	return client.Exec(ctx, a.client, client.Request{
		Method: http.MethodPost,
		Path:   authBase + "/reset-password",
		Body:   req,
	})
}
