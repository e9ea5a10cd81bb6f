// Package config loads configuration and sets up logging.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Google Sheets source
	SpreadsheetID string
	SheetName     string
	ClientEmail   string
	PrivateKey    string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig is the optional YAML config file shape. Credentials are
// deliberately env-only so they never end up in dotfiles.
type fileConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	SheetName     string `yaml:"sheet_name"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
}

// defaultSpreadsheetID is the MicroShift QE test-run sheet.
const defaultSpreadsheetID = "1FLO4S4-iJeAYVh0BGsgiwKVeTUkpi-Mw7GmEs_zFhlg"

// Load reads configuration from the optional YAML config file, with
// environment variables taking precedence. Credentials come from
// GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY only.
func Load() Config {
	fc := loadFile(getEnv("ANALYZER_CONFIG", defaultConfigPath()))

	return Config{
		SpreadsheetID: getEnv("SPREADSHEET_ID", firstOf(fc.SpreadsheetID, defaultSpreadsheetID)),
		SheetName:     getEnv("SHEET_NAME", fc.SheetName),
		ClientEmail:   os.Getenv("GOOGLE_CLIENT_EMAIL"),
		PrivateKey:    os.Getenv("GOOGLE_PRIVATE_KEY"),

		LogFile:  getEnv("ANALYZER_LOG_FILE", firstOf(fc.LogFile, "/tmp/test-analyzer.log")),
		LogLevel: parseLogLevel(getEnv("ANALYZER_LOG_LEVEL", firstOf(fc.LogLevel, "INFO"))),
	}
}

// loadFile parses the YAML config file. A missing or unreadable file is
// not an error; everything has env or built-in defaults.
func loadFile(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		slog.Warn("ignoring unparseable config file", "path", path, "error", err)
		return fileConfig{}
	}
	return fc
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "test-analyzer", "config.yaml")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
