package domain

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the fixed bcrypt work factor for new credentials.
const passwordHashCost = 10

var bcryptHashPattern = regexp.MustCompile(`^\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}$`)

// Password wraps a salted bcrypt hash. The plaintext is never retained after
// construction.
type Password struct {
	hashed string
}

// NewPassword hashes plaintext with the fixed work factor. Rejecting empty
// plaintext is the caller's validation job, not this constructor's.
func NewPassword(plaintext string) (Password, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return Password{}, fmt.Errorf("hash password: %w", err)
	}
	return Password{hashed: string(hash)}, nil
}

// PasswordFromHash reconstructs a Password from an already-hashed value,
// failing when the value is not a recognizable bcrypt hash.
func PasswordFromHash(hash string) Outcome[Password, string] {
	if !bcryptHashPattern.MatchString(hash) {
		return Failure[Password, string]("Invalid hashed Password")
	}
	return Success[Password, string](Password{hashed: hash})
}

// CompareWith reports whether plaintext matches the stored hash. It defers to
// bcrypt's own verification so salt extraction and timing behaviour stay with
// the library; a mismatch is false, never an error.
func (p Password) CompareWith(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hashed), []byte(plaintext)) == nil
}

// String returns the stored hash, never the plaintext.
func (p Password) String() string { return p.hashed }
