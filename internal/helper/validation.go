package helper

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"trivia-backend/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

var Field = ozzo.Field

var errorMessages = map[string]string{
	"required":   "%s is required",
	"min_length": "%s must be at least %d characters",
	"max_length": "%s must be at most %d characters",
	"digit":      "%s must contain digits only",
	"in":         "%s has an unsupported value",
}

var numberPattern = regexp.MustCompile(`\d+`)

func translateError(list map[string]string, field string, err error) data.ValidationErrorData {
	fieldName := getDisplayName(field, list)
	msg := err.Error()

	switch {
	case strings.Contains(msg, "cannot be blank"):
		msg = fmt.Sprintf(errorMessages["required"], fieldName)
	case strings.Contains(msg, "the length must be no less than"):
		msg = fmt.Sprintf(errorMessages["min_length"], fieldName, extractFirstNumber(msg))
	case strings.Contains(msg, "the length must be no more than"):
		msg = fmt.Sprintf(errorMessages["max_length"], fieldName, extractFirstNumber(msg))
	case strings.Contains(msg, "must contain digits only"):
		msg = fmt.Sprintf(errorMessages["digit"], fieldName)
	case strings.Contains(msg, "must be a valid value"):
		msg = fmt.Sprintf(errorMessages["in"], fieldName)
	default:
		msg = fmt.Sprintf("%s is invalid", fieldName)
	}

	return data.ValidationErrorData{
		Field:   field,
		Message: msg,
	}
}

func extractFirstNumber(msg string) int {
	match := numberPattern.FindString(msg)
	if match == "" {
		return 0
	}
	num, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return num
}

func getDisplayName(field string, list map[string]string) string {
	if name, exists := list[field]; exists {
		return name
	}
	return field
}

// ValidateStruct runs the ozzo rules and returns translated errors sorted by
// field name, or nil when s is valid.
func ValidateStruct(list map[string]string, s interface{}, fields ...*ozzo.FieldRules) []data.ValidationErrorData {
	err := ozzo.ValidateStruct(s, fields...)
	if err == nil {
		return nil
	}

	var errors []data.ValidationErrorData
	if validationErrors, ok := err.(ozzo.Errors); ok {
		for field, err := range validationErrors {
			errors = append(errors, translateError(list, field, err))
		}
	} else {
		errors = append(errors, data.ValidationErrorData{Message: err.Error()})
	}

	sort.Slice(errors, func(i, j int) bool {
		return errors[i].Field < errors[j].Field
	})
	return errors
}
