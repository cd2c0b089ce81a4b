// config.go
//
// A personal workout tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of workout-tracker.
// workout-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// workout-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with workout-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string `toml:"port"`
	Env  string `toml:"-"`

	// Database configuration
	DBType            string `toml:"db_type"` // mysql, postgres, sqlite, sqlite3, sqlserver
	DBHost            string `toml:"db_host"`
	DBPort            string `toml:"db_port"`
	DBDatabase        string `toml:"db_database"`
	DBUser            string `toml:"db_user"`
	DBPassword        string `toml:"db_password"`
	DBConnectionLimit int    `toml:"db_connection_limit"`
	DBLogLevel        string `toml:"db_log_level"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`

	// Authorizer configuration, optional
	AuthzURL      string `toml:"authz_url"`
	AuthzClientID string `toml:"authz_client_id"`

	// Seed the catalog on startup when it is empty
	SeedCatalog bool `toml:"seed_catalog"`

	MetricsNamespace string `toml:"metrics_namespace"`
}

// Toml is the layout of the optional CONFIG_FILE
type Toml struct {
	Development *Config
	Production  *Config
}

// Get returns the section for the given environment name
func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Defaults returns the configuration used before any file or environment is applied
func Defaults() *Config {
	return &Config{
		Port:              "3000",
		Env:               "development",
		DBType:            "sqlite",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBConnectionLimit: 5,
		DBLogLevel:        "warn",
		LogLevel:          "info",
		LogToStdout:       true,
		MetricsNamespace:  "workouttracker",
	}
}

// LoadEnvFile loads variables from a .env file into the process environment
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load loads configuration from CONFIG_FILE (if set) and then environment variables
func Load() (*Config, error) {
	cfg := Defaults()
	cfg.Env = getEnv("APP_ENV", cfg.Env)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileCfg, err := loadFile(path, cfg.Env)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBType = strings.ToLower(getEnv("DB_TYPE", cfg.DBType))
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBDatabase = getEnv("DB_DATABASE", cfg.DBDatabase)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBConnectionLimit = getEnvAsInt("DB_CONNECTION_LIMIT", cfg.DBConnectionLimit)
	cfg.DBLogLevel = getEnv("DB_LOG_LEVEL", cfg.DBLogLevel)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.LogToStdout = getEnvAsBool("LOG_TO_STDOUT", cfg.LogToStdout)
	cfg.LogFormatJSON = getEnvAsBool("LOG_FORMAT_JSON", cfg.LogFormatJSON)
	cfg.AuthzURL = getEnv("AUTHZ_URL", cfg.AuthzURL)
	cfg.AuthzClientID = getEnv("AUTHZ_CLIENT_ID", cfg.AuthzClientID)
	cfg.SeedCatalog = getEnvAsBool("SEED_CATALOG", cfg.SeedCatalog)
	cfg.MetricsNamespace = getEnv("METRICS_NAMESPACE", cfg.MetricsNamespace)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and supported values
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if !IsSupportedDBType(c.DBType) {
		return fmt.Errorf("unsupported DB_TYPE: %s", c.DBType)
	}
	if c.AuthzURL != "" && c.AuthzClientID == "" {
		return fmt.Errorf("AUTHZ_CLIENT_ID is required when AUTHZ_URL is set")
	}
	return nil
}

// AuthEnabled reports whether requests must carry an authorizer session
func (c *Config) AuthEnabled() bool {
	return c.AuthzURL != ""
}

// IsSupportedDBType reports whether database.Connect knows the dialect
func IsSupportedDBType(dbType string) bool {
	switch dbType {
	case "mysql", "mariadb", "postgres", "postgresql", "sqlite", "sqlite3", "sqlserver", "mssql":
		return true
	}
	return false
}

// loadFile decodes the env section of a TOML file over the defaults
func loadFile(path, env string) (*Config, error) {
	t := Toml{
		Development: Defaults(),
		Production:  Defaults(),
	}
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Env = strings.ToLower(env)

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
