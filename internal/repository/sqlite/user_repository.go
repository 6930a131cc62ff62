package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"identity-server/internal/domain"
	"identity-server/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	modified_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, username, password_hash, created_at, modified_at
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, username, password_hash, created_at, modified_at
FROM users
WHERE username = ?`,
		username,
	)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, username, password_hash, created_at, modified_at
FROM users
WHERE email = ?`,
		email.String(),
	)
	return scanUser(row)
}

// Save inserts a user without an id under a fresh uuid and updates an
// existing record otherwise. The unique constraints on email and username
// back up the use-case-level checks under concurrent registration.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()

	if user.ID() == "" {
		id := uuid.NewString()
		_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, email, username, password_hash, created_at, modified_at)
VALUES (?, ?, ?, ?, ?, ?)`,
			id,
			user.Email().String(),
			user.Username(),
			user.Password().String(),
			user.CreatedAt(),
			now,
		)
		if err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				return nil, fmt.Errorf("user already exists: %w", err)
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}
		return domain.ReconstructUser(id, user.Email(), user.Username(), user.Password(), user.CreatedAt(), now), nil
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET email = ?, username = ?, password_hash = ?, modified_at = ?
WHERE id = ?`,
		user.Email().String(),
		user.Username(),
		user.Password().String(),
		now,
		user.ID(),
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("user rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return domain.ReconstructUser(user.ID(), user.Email(), user.Username(), user.Password(), user.CreatedAt(), now), nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		id, emailStr, username, hash string
		createdAt, modifiedAt        time.Time
	)
	if err := row.Scan(&id, &emailStr, &username, &hash, &createdAt, &modifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	email := domain.NewEmail(emailStr)
	if email.IsFailure() {
		return nil, fmt.Errorf("stored email for user %s is invalid", id)
	}
	password := domain.PasswordFromHash(hash)
	if password.IsFailure() {
		return nil, fmt.Errorf("stored password hash for user %s is invalid", id)
	}

	return domain.ReconstructUser(id, email.Value(), username, password.Value(), createdAt, modifiedAt), nil
}
