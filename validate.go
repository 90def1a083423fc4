package ctmigrate

import (
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	ctypePattern = regexp.MustCompile(`^\w+$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateColumn, Column{})
	_ = v.RegisterValidation("ctype", func(fl validator.FieldLevel) bool {
		return ctypePattern.MatchString(fl.Field().String())
	})
	return v
}

func validateColumn(sl validator.StructLevel) {
	col := sl.Current().Interface().(Column)
	if col.Name() == "" {
		sl.ReportError(col.Name(), "name", "Name", "required", "")
	}
}

// A Validator checks an answer given to a prompt. It returns the accepted
// value, which may be normalized, or a *ValidationError explaining why the
// answer was rejected.
type Validator func(value string) (string, error)

// Required rejects empty answers with "The <subject> must not be empty."
func Required(subject string) Validator {
	return func(value string) (string, error) {
		if err := validate.Var(value, "required"); err != nil {
			return "", NewValidationError(subject, "The %s must not be empty.", subject)
		}
		return value, nil
	}
}

// RequiredTrimmed is Required, but answers consisting of whitespace only are
// rejected too. The untrimmed answer is returned.
func RequiredTrimmed(subject string) Validator {
	return func(value string) (string, error) {
		if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
			return "", NewValidationError(subject, "The %s must not be empty.", subject)
		}
		return value, nil
	}
}

// ExtensionKey accepts one of the available extension keys.
func ExtensionKey(available []string) Validator {
	return func(value string) (string, error) {
		if err := validate.Var(value, "required"); err != nil {
			return "", NewValidationError("extension", "The extension key must not be empty.")
		}
		if !slices.Contains(available, value) {
			return "", NewValidationError("extension",
				"The extension key %q is not available. Please choose one of the following: %s",
				value, strings.Join(available, ", "))
		}
		return value, nil
	}
}

// ContentTypeIdentifier accepts non-empty names made of letters, digits and
// underscores.
func ContentTypeIdentifier(value string) (string, error) {
	if err := validate.Var(value, "required,ctype"); err != nil {
		return "", NewValidationError("ctype",
			"The name of the content block must not be empty and must only contain characters, numbers and underscores.")
	}
	return value, nil
}

// Chain runs validators in order, feeding each the value accepted by the
// previous one.
func Chain(validators ...Validator) Validator {
	return func(value string) (string, error) {
		var err error
		for _, v := range validators {
			if v == nil {
				continue
			}
			if value, err = v(value); err != nil {
				return "", err
			}
		}
		return value, nil
	}
}
