package accounts

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minPincode = 100000
	maxPincode = 999999

	minPhone = 1000000000
	maxPhone = 9999999999

	minPasswordLength = 8
)

var (
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	usernameRe = regexp.MustCompile(`^[\pL\pN_.@+-]+$`)
)

// ValidatePincode accepts 6 digit pincodes only.
func ValidatePincode(value int64) error {
	if value < minPincode || value > maxPincode {
		return &ValidationError{
			Field:   "pincode",
			Kind:    KindInvalidPincode,
			Message: fmt.Sprintf("%d is not a valid pincode. A pincode must be a 6 digit number.", value),
		}
	}
	return nil
}

// ValidatePhone accepts 10 digit phone numbers only.
func ValidatePhone(value int64) error {
	if value < minPhone || value > maxPhone {
		return &ValidationError{
			Field:   "phone",
			Kind:    KindInvalidPhone,
			Message: fmt.Sprintf("%d is not a valid phone number. A phone must be a 10 digit number.", value),
		}
	}
	return nil
}

// ValidateFullName requires exactly two whitespace separated words.
func ValidateFullName(value string) error {
	if len(strings.Fields(value)) != 2 {
		return &ValidationError{
			Field:   "full_name",
			Kind:    KindInvalidFullName,
			Message: "Full name must consist of exactly two words.",
		}
	}
	return nil
}

// ValidatePasswordStrength checks length, then uppercase, then lowercase, and
// reports only the first rule that fails.
func ValidatePasswordStrength(password string) error {
	weak := func(detail PasswordDetail, msg string) error {
		return &ValidationError{Field: "password", Kind: KindWeakPassword, Detail: detail, Message: msg}
	}
	switch {
	case utf8.RuneCountInString(password) < minPasswordLength:
		return weak(DetailTooShort, "Password must be at least 8 characters long.")
	case !upperRe.MatchString(password):
		return weak(DetailMissingUppercase, "Password must contain at least one uppercase letter.")
	case !lowerRe.MatchString(password):
		return weak(DetailMissingLowercase, "Password must contain at least one lowercase letter.")
	}
	return nil
}

func validUsername(value string) bool {
	return usernameRe.MatchString(value)
}

// SplitFullName returns the first and second whitespace separated tokens of
// name; missing tokens come back empty.
func SplitFullName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// NormalizeEmail lower-cases the domain part of an address, leaving the local
// part untouched. Input without an '@' is returned as given.
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}
	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}
