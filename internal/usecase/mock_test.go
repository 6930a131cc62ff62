package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"identity-server/internal/domain"
	"identity-server/internal/repository"
)

// mockUserRepo implements repository.UserRepository in memory and counts
// calls so tests can assert on repository traffic.
type mockUserRepo struct {
	users     []*domain.User
	idCounter int

	findCalls int
	saveCalls int

	findErr error
	saveErr error
	saveNil bool
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email domain.Email) (*domain.User, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if u.Email().String() == email.String() {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	m.saveCalls++
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if m.saveNil {
		return nil, nil
	}

	m.idCounter++
	saved := domain.ReconstructUser(
		fmt.Sprintf("user_%d", m.idCounter),
		user.Email(),
		user.Username(),
		user.Password(),
		user.CreatedAt(),
		time.Now().UTC(),
	)
	m.users = append(m.users, saved)
	return saved, nil
}

// seedUser stores a user with a real bcrypt hash for the given plaintext.
func (m *mockUserRepo) seedUser(t *testing.T, email, username, plaintext string) *domain.User {
	t.Helper()

	emailVO := domain.NewEmail(email)
	if !emailVO.IsSuccess() {
		t.Fatalf("seed email %q is invalid", email)
	}
	password, err := domain.NewPassword(plaintext)
	if err != nil {
		t.Fatalf("seed password: %v", err)
	}

	m.idCounter++
	u := domain.ReconstructUser(
		fmt.Sprintf("user_%d", m.idCounter),
		emailVO.Value(),
		username,
		password,
		time.Now().UTC(),
		time.Now().UTC(),
	)
	m.users = append(m.users, u)
	return u
}
