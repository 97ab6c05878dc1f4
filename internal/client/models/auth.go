package models

// Credentials are the login form values.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the payload of a successful login or refresh.
type AuthResponse struct {
	Token     string `json:"token"`
	User      User   `json:"user"`
	Roles     []Role `json:"roles"`
	ExpiresAt string `json:"expiresAt"`
}

// VerifyResponse is the payload of a successful token verification.
type VerifyResponse struct {
	User  User   `json:"user"`
	Roles []Role `json:"roles"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
