package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/arkania/internal/client/client"
	"github.com/dmitrijs2005/arkania/internal/client/models"
	"github.com/dmitrijs2005/arkania/internal/client/services"
	"github.com/dmitrijs2005/arkania/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in. A rejected login is reported
// to the user and returned.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.signedOut.Store(false)
	err = a.session.Login(ctx, models.Credentials{Username: userName, Password: string(password)})
	switch {
	case err == nil:
		if st := a.session.State(); st.User != nil {
			log.Printf("Login successful, welcome %s", st.User.FullName())
		} else {
			log.Printf("Login successful")
		}
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Printf("Login unsuccessful: %s", err.Error())
	case errors.Is(err, client.ErrUnavailable):
		log.Printf("Server unavailable, try again later")
	default:
		log.Printf("Login unsuccessful: %s", err.Error())
	}
	return err
}

func (a *App) Logout(ctx context.Context) error {
	a.signedOut.Store(true)
	a.session.Logout(ctx)
	a.listing = nil
	return nil
}

// WhoAmI prints the signed-in user and their roles.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if st.User == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(st.User.FullName(), "<"+st.User.Email+">", "id="+st.User.ID)
	names := make([]string, 0, len(st.Roles))
	for _, r := range st.Roles {
		names = append(names, r.Name)
	}
	if len(names) == 0 {
		printlnFn("Roles: none")
	} else {
		printlnFn("Roles:", strings.Join(names, ", "))
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.Refresh(ctx); err != nil {
		log.Printf("Token refresh failed: %s", err.Error())
		return err
	}
	log.Printf("Token refreshed")
	return nil
}

// ChangePassword prompts for the current and the new password.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.account.ChangePassword(ctx, string(current), string(next)); err != nil {
		log.Printf("Password change failed: %s", err.Error())
		return err
	}
	log.Printf("Password changed")
	return nil
}

// ForgotPassword asks the backend to mail a reset token.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.account.ForgotPassword(ctx, email); err != nil {
		log.Printf("Reset request failed: %s", err.Error())
		return err
	}
	log.Printf("If the address is registered, a reset token is on its way")
	return nil
}

// ResetPassword sets a new password using a mailed reset token.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	next, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.account.ResetPassword(ctx, token, string(next)); err != nil {
		log.Printf("Password reset failed: %s", err.Error())
		return err
	}
	log.Printf("Password reset, you can log in now")
	return nil
}
