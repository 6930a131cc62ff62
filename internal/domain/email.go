package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// Email is an immutable, validated email address. Equality is by string
// value.
type Email struct {
	value string
}

// ValidEmail reports whether s matches the accepted local-part@domain shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NewEmail validates s and wraps it. The value is stored exactly as given;
// trimming and case folding are the caller's responsibility.
func NewEmail(s string) Outcome[Email, string] {
	if !ValidEmail(s) {
		return Failure[Email, string]("Invalid email format")
	}
	return Success[Email, string](Email{value: s})
}

func (e Email) String() string { return e.value }
