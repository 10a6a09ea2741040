package helper

import (
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
)

func GetCurrentTimeWithFormat(format string) string {
	return time.Now().UTC().Format(format)
}

func GenerateUID() string {
	return uuid.New().String()
}

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func CheckIfFileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func CreateDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}
