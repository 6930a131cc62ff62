package usecase

import (
	"context"
	"fmt"
	"strings"

	"identity-server/internal/domain"
	"identity-server/internal/repository"
)

// RegisterUserRequest carries the registration input. Username and email
// arrive pre-trimmed from the boundary; the password fields pass through
// untouched so significant whitespace survives.
type RegisterUserRequest struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// RegisterUserResponse is the public-safe projection of a persisted user.
type RegisterUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterOutcome is the result of a registration attempt.
type RegisterOutcome = domain.Outcome[RegisterUserResponse, []FieldError]

// RegisterUser validates a registration request, checks uniqueness through
// the repository and persists a new user.
type RegisterUser struct {
	users repository.UserRepository
}

func NewRegisterUser(users repository.UserRepository) *RegisterUser {
	return &RegisterUser{users: users}
}

// Execute runs the registration flow. Field and business failures accumulate
// inside the outcome; the error return carries only unexpected repository
// faults, which the boundary translates into a generic response.
func (uc *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (RegisterOutcome, error) {
	var errs []FieldError

	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username is required."})
	}

	emailOutcome := domain.NewEmail(req.Email)
	if emailOutcome.IsFailure() {
		msg := emailOutcome.Err()
		if msg == "" {
			msg = "Invalid email format."
		}
		errs = append(errs, FieldError{Field: "email", Message: msg})
	}

	if strings.TrimSpace(req.Password) == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required."})
	}

	if req.Password != req.PasswordConfirm {
		errs = append(errs, FieldError{Field: "passwordConfirm", Message: "Password confirmation does not match."})
	}

	// Local validation must pass before any repository traffic.
	if len(errs) > 0 {
		return domain.Failure[RegisterUserResponse, []FieldError](errs), nil
	}

	email := emailOutcome.Value()
	if existing, err := uc.users.FindByEmail(ctx, email); err != nil {
		return RegisterOutcome{}, fmt.Errorf("find user by email: %w", err)
	} else if existing != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Email already in use."})
	}

	username := strings.TrimSpace(req.Username)
	if existing, err := uc.users.FindByUsername(ctx, username); err != nil {
		return RegisterOutcome{}, fmt.Errorf("find user by username: %w", err)
	} else if existing != nil {
		errs = append(errs, FieldError{Field: "username", Message: "Username already in use."})
	}

	if len(errs) > 0 {
		return domain.Failure[RegisterUserResponse, []FieldError](errs), nil
	}

	password, err := domain.NewPassword(req.Password)
	if err != nil {
		return RegisterOutcome{}, err
	}

	saved, err := uc.users.Save(ctx, domain.NewUser(email, username, password))
	if err != nil {
		return RegisterOutcome{}, fmt.Errorf("save user: %w", err)
	}
	if saved == nil {
		return domain.Failure[RegisterUserResponse, []FieldError]([]FieldError{
			{Field: FieldGeneral, Message: "Error saving user."},
		}), nil
	}

	// The persisted user is authoritative, notably for the assigned id.
	return domain.Success[RegisterUserResponse, []FieldError](RegisterUserResponse{
		ID:       saved.ID(),
		Username: saved.Username(),
		Email:    saved.Email().String(),
	}), nil
}
