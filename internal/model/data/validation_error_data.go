package data

import "strings"

type ValidationErrorData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JoinValidationErrors flattens a validation result into one message.
func JoinValidationErrors(list []ValidationErrorData) string {
	msgs := make([]string, 0, len(list))
	for _, item := range list {
		msgs = append(msgs, item.Message)
	}
	return strings.Join(msgs, "; ")
}
