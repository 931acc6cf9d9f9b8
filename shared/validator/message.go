package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"date":     "{field} must be a date (YYYY-MM-DD) or an RFC 3339 timestamp",
	}
)

// RequiredMessenger lets a request replace the generic "is required" message
// with a single sentence naming every mandatory field.
type RequiredMessenger interface {
	RequiredMessage() string
}

func message(err error, data any) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if valErr.Tag() == "required" {
				if messenger, ok := data.(RequiredMessenger); ok {
					return messenger.RequiredMessage()
				}
			}

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
