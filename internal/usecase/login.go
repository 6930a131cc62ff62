package usecase

import (
	"context"
	"fmt"
	"strings"

	"identity-server/internal/domain"
	"identity-server/internal/repository"
)

// UserLoginRequest carries the raw credential pair. Neither field is trimmed
// at the boundary.
type UserLoginRequest struct {
	Email    string
	Password string
}

// UserLoginResponse carries the authentication artifact issued on success.
type UserLoginResponse struct {
	JWT string `json:"jwt"`
}

// LoginOutcome is the result of a login attempt.
type LoginOutcome = domain.Outcome[UserLoginResponse, []FieldError]

// TokenIssuer mints the signed credential returned on successful login.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// LoginUser validates a login request, looks up the user and verifies the
// password.
type LoginUser struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

func NewLoginUser(users repository.UserRepository, tokens TokenIssuer) *LoginUser {
	return &LoginUser{users: users, tokens: tokens}
}

// Execute runs the login flow. A lookup miss and a password mismatch produce
// the same failure so callers cannot tell which half of the credential pair
// was wrong.
func (uc *LoginUser) Execute(ctx context.Context, req UserLoginRequest) (LoginOutcome, error) {
	var errs []FieldError

	emailOutcome := domain.NewEmail(req.Email)
	if emailOutcome.IsFailure() {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	if strings.TrimSpace(req.Password) == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return domain.Failure[UserLoginResponse, []FieldError](errs), nil
	}

	user, err := uc.users.FindByEmail(ctx, emailOutcome.Value())
	if err != nil {
		return LoginOutcome{}, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return invalidCredentials(), nil
	}

	if !user.Password().CompareWith(req.Password) {
		return invalidCredentials(), nil
	}

	token, err := uc.tokens.Issue(user.ID())
	if err != nil {
		return LoginOutcome{}, fmt.Errorf("issue token: %w", err)
	}

	return domain.Success[UserLoginResponse, []FieldError](UserLoginResponse{JWT: token}), nil
}

func invalidCredentials() LoginOutcome {
	return domain.Failure[UserLoginResponse, []FieldError]([]FieldError{
		{Field: FieldGeneral, Message: "Invalid email or password"},
	})
}
