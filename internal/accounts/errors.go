package accounts

import "errors"

// Kind classifies a ValidationError or ValueError.
type Kind string

const (
	KindInvalidPincode  Kind = "InvalidPincode"
	KindInvalidPhone    Kind = "InvalidPhone"
	KindInvalidFullName Kind = "InvalidFullName"
	KindWeakPassword    Kind = "WeakPassword"
	KindRequired        Kind = "Required"
	KindInvalidEmail    Kind = "InvalidEmail"
	KindInvalidUsername Kind = "InvalidUsername"
	KindTooLong         Kind = "TooLong"

	KindMissingEmail               Kind = "MissingEmail"
	KindSuperuserRequiresStaff     Kind = "SuperuserRequiresStaff"
	KindSuperuserRequiresSuperuser Kind = "SuperuserRequiresSuperuser"
)

// PasswordDetail narrows a WeakPassword failure.
type PasswordDetail string

const (
	DetailTooShort         PasswordDetail = "TooShort"
	DetailMissingUppercase PasswordDetail = "MissingUppercase"
	DetailMissingLowercase PasswordDetail = "MissingLowercase"
)

// ValidationError reports a field or record constraint violation. The caller
// can always recover by resubmitting corrected input.
type ValidationError struct {
	Field   string
	Kind    Kind
	Detail  PasswordDetail
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches on Kind, and on Detail when the target sets one.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Detail == "" || t.Detail == e.Detail
}

// ValueError reports a violated precondition of a privileged operation.
type ValueError struct {
	Kind    Kind
	Message string
}

func (e *ValueError) Error() string {
	return e.Message
}

func (e *ValueError) Is(target error) bool {
	var t *ValueError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidPincode  = &ValidationError{Kind: KindInvalidPincode}
	ErrInvalidPhone    = &ValidationError{Kind: KindInvalidPhone}
	ErrInvalidFullName = &ValidationError{Kind: KindInvalidFullName}
	ErrWeakPassword    = &ValidationError{Kind: KindWeakPassword}
	ErrPasswordShort   = &ValidationError{Kind: KindWeakPassword, Detail: DetailTooShort}
	ErrPasswordNoUpper = &ValidationError{Kind: KindWeakPassword, Detail: DetailMissingUppercase}
	ErrPasswordNoLower = &ValidationError{Kind: KindWeakPassword, Detail: DetailMissingLowercase}

	ErrMissingEmail               = &ValueError{Kind: KindMissingEmail, Message: "the email field must be set"}
	ErrSuperuserRequiresStaff     = &ValueError{Kind: KindSuperuserRequiresStaff, Message: "superuser must have is_staff=true"}
	ErrSuperuserRequiresSuperuser = &ValueError{Kind: KindSuperuserRequiresSuperuser, Message: "superuser must have is_superuser=true"}
)
