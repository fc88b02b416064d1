package accounts

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hongminglow/cms-accounts/internal/models"
)

// Cleaner runs field and record level validation over an Account.
type Cleaner struct {
	validate *validator.Validate
}

// NewCleaner registers the account field validators.
func NewCleaner() *Cleaner {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return validUsername(fl.Field().String())
	})
	_ = validate.RegisterValidation("full_name", func(fl validator.FieldLevel) bool {
		return ValidateFullName(fl.Field().String()) == nil
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().Int()) == nil
	})
	_ = validate.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return ValidatePincode(fl.Field().Int()) == nil
	})

	return &Cleaner{validate: validate}
}

// CleanFields validates every field constraint and returns the first failure
// in field declaration order.
func (c *Cleaner) CleanFields(a *models.Account) error {
	err := c.validate.Struct(a)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate account: %w", err)
	}
	return fromFieldError(fieldErrs[0])
}

// Clean runs field validation followed by the record level password check.
// The password is checked only while a raw one is set on the record.
func (c *Cleaner) Clean(a *models.Account) error {
	if err := c.CleanFields(a); err != nil {
		return err
	}
	if a.Password != "" {
		return ValidatePasswordStrength(a.Password)
	}
	return nil
}

// Normalize derives the first and last name from the full name.
func Normalize(a *models.Account) {
	a.FirstName, a.LastName = SplitFullName(a.FullName)
}

func fromFieldError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "full_name":
		return asValidationError(ValidateFullName(fe.Value().(string)))
	case "phone":
		return asValidationError(ValidatePhone(fe.Value().(int64)))
	case "pincode":
		return asValidationError(ValidatePincode(fe.Value().(int64)))
	case "username":
		return &ValidationError{
			Field:   field,
			Kind:    KindInvalidUsername,
			Message: "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
		}
	case "required":
		return &ValidationError{Field: field, Kind: KindRequired, Message: fmt.Sprintf("%s cannot be blank.", field)}
	case "email":
		return &ValidationError{Field: field, Kind: KindInvalidEmail, Message: "Enter a valid email address."}
	case "max":
		return &ValidationError{
			Field:   field,
			Kind:    KindTooLong,
			Message: fmt.Sprintf("Ensure %s has at most %s characters.", field, fe.Param()),
		}
	default:
		return &ValidationError{Field: field, Kind: Kind(fe.Tag()), Message: fe.Error()}
	}
}

func asValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return &ValidationError{Message: fmt.Sprint(err)}
}
