package domain

import "time"

// User is the identity aggregate. The id stays empty until the repository
// assigns one on first save; the repository is authoritative for it.
type User struct {
	id         string
	email      Email
	username   string
	password   Password
	createdAt  time.Time
	modifiedAt time.Time
}

// NewUser builds a not-yet-persisted user. Both timestamps come from a single
// clock read so they are the same instant.
func NewUser(email Email, username string, password Password) *User {
	now := time.Now().UTC()
	return &User{
		email:      email,
		username:   username,
		password:   password,
		createdAt:  now,
		modifiedAt: now,
	}
}

// ReconstructUser rehydrates a stored user. No validation happens here; the
// repository supplies previously validated data.
func ReconstructUser(id string, email Email, username string, password Password, createdAt, modifiedAt time.Time) *User {
	return &User{
		id:         id,
		email:      email,
		username:   username,
		password:   password,
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
	}
}

func (u *User) ID() string            { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Username() string      { return u.username }
func (u *User) Password() Password    { return u.password }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) ModifiedAt() time.Time { return u.modifiedAt }

// SetUsername renames the user. Persisting the change is the caller's job.
func (u *User) SetUsername(username string) { u.username = username }

// SetPassword replaces the credential, for password-change flows.
func (u *User) SetPassword(password Password) { u.password = password }
