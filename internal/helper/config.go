package helper

import (
	"fmt"

	"github.com/joho/godotenv"
)

// EnvFilePath maps APP_ENV to the env file loaded at startup.
func EnvFilePath(env string) string {
	switch env {
	case "staging":
		return "config/.env.staging"
	case "production":
		return "config/.env.production"
	case "test":
		return "config/.env.test"
	default:
		return "config/.env.dev"
	}
}

// SetServerConfig loads the env file into the process environment.
// Variables that are already set win over the file, and a missing file is
// not an error so containers can rely on the real environment alone.
func SetServerConfig(envPath string) error {
	if envPath == "" || !CheckIfFileExists(envPath) {
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("load env file %s: %w", envPath, err)
	}

	return nil
}
