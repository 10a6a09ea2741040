package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"trivia-backend/internal/helper"
	"trivia-backend/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ServerConfig is the runtime configuration handed to the database and
// route constructors.
type ServerConfig struct {
	AppEnv        string `json:"app_env"`
	Port          string `json:"server_port"`
	GinMode       string `json:"gin_mode"`
	DBDriver      string `json:"db_driver"`
	DBHost        string `json:"db_host"`
	DBPort        string `json:"db_port"`
	DBUser        string `json:"db_user"`
	DBPassword    string `json:"db_password"`
	DBName        string `json:"db_name"`
	DBSchema      string `json:"db_schema"`
	DBSSLMode     string `json:"db_ssl_mode"`
	DBTimeZone    string `json:"db_timezone"`
	DBAutoMigrate bool   `json:"db_auto_migrate"`
	LogLevel      string `json:"log_level"`
	LogDir        string `json:"log_dir"`
}

// Load reads the configuration from the environment, applies defaults and
// validates the result.
func Load() (ServerConfig, error) {
	cfg := ServerConfig{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("SERVER_PORT", "5000"),
		GinMode:       getEnv("GIN_MODE", ""),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", ""),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "trivia"),
		DBSchema:      getEnv("DB_SCHEMA", "public"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		DBTimeZone:    getEnv("DB_TIMEZONE", "UTC"),
		DBAutoMigrate: parseBool(os.Getenv("DB_AUTO_MIGRATE")),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogDir:        getEnv("LOG_DIR", "logs"),
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		return cfg, errors.New("invalid server config: " + data.JoinValidationErrors(errs))
	}

	return cfg, nil
}

func (c ServerConfig) Validate() []data.ValidationErrorData {
	return helper.ValidateStruct(map[string]string{
		"server_port": "SERVER_PORT",
		"db_driver":   "DB_DRIVER",
		"db_name":     "DB_NAME",
		"db_host":     "DB_HOST",
		"db_port":     "DB_PORT",
		"db_user":     "DB_USER",
		"gin_mode":    "GIN_MODE",
	}, &c, c.rules()...)
}

func (c *ServerConfig) rules() []*ozzo.FieldRules {
	rules := []*ozzo.FieldRules{
		helper.Field(&c.Port, ozzo.Required, is.Digit),
		helper.Field(&c.DBDriver, ozzo.Required, ozzo.In(DriverPostgres, DriverSQLite)),
		helper.Field(&c.DBName, ozzo.Required),
		helper.Field(&c.GinMode, ozzo.In("debug", "release", "test")),
	}

	if c.DBDriver == DriverPostgres {
		rules = append(rules,
			helper.Field(&c.DBHost, ozzo.Required),
			helper.Field(&c.DBPort, ozzo.Required, is.Digit),
			helper.Field(&c.DBUser, ozzo.Required),
		)
	}

	return rules
}

// PostgresDSN builds the key/value connection string for the postgres driver.
func (c ServerConfig) PostgresDSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" dbname=" + c.DBName +
		" password=" + c.DBPassword +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=" + c.DBTimeZone +
		" search_path=" + c.DBSchema
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}
