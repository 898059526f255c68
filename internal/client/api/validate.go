package api

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const minUsernameLength = 3

// ValidateRegistration checks the form in a fixed order and reports the
// first rule that fails.
func ValidateRegistration(r RegisterRequest, minPasswordLength int) error {
	if utf8.RuneCountInString(r.Username) < minUsernameLength {
		return &ValidationError{Field: "username",
			Message: fmt.Sprintf("username must be at least %d characters", minUsernameLength)}
	}
	if !usernamePattern.MatchString(r.Username) {
		return &ValidationError{Field: "username",
			Message: "username may contain only letters, digits, underscores and hyphens"}
	}
	if !emailPattern.MatchString(r.Email) {
		return &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLength {
		return &ValidationError{Field: "password",
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}

	var lower, upper, digit bool
	for _, ch := range r.Password {
		switch {
		case unicode.IsLower(ch):
			lower = true
		case unicode.IsUpper(ch):
			upper = true
		case unicode.IsDigit(ch):
			digit = true
		}
	}
	switch {
	case !lower:
		return &ValidationError{Field: "password", Message: "password must contain a lowercase letter"}
	case !upper:
		return &ValidationError{Field: "password", Message: "password must contain an uppercase letter"}
	case !digit:
		return &ValidationError{Field: "password", Message: "password must contain a digit"}
	}
	return nil
}
