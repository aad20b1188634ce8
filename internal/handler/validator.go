package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxRSNLength is the longest display name the game allows
const MaxRSNLength = 12

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("rsn", validateRSN)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field -> message map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequestFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ErrMsgFieldRequired
		case "rsn":
			errs[field] = ErrMsgFieldRSN
		case "max":
			errs[field] = fmt.Sprintf(ErrMsgFieldMax, e.Param())
		case "min":
			errs[field] = fmt.Sprintf(ErrMsgFieldMin, e.Param())
		default:
			errs[field] = ErrMsgFieldInvalid
		}
	}

	return errs
}

// validateRSN accepts game display names: letters, digits, spaces, '-' and
// '_'. The client reports spaces as non-breaking spaces.
func validateRSN(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	if utf8.RuneCountInString(name) > MaxRSNLength {
		return false
	}
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		case r == ' ', r == '\u00a0', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
