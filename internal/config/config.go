package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	SpreadsheetName   string
	WorkspaceCacheDir string
	DefaultSchoolYear string
	SheetsBaseURL     string
	DriveBaseURL      string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GRAIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "grAIde API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("spreadsheet.name", "graide-data")
	v.SetDefault("workspace.cache_dir", ".graide")
	v.SetDefault("school.year", "")

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		SpreadsheetName:   v.GetString("spreadsheet.name"),
		WorkspaceCacheDir: v.GetString("workspace.cache_dir"),
		DefaultSchoolYear: v.GetString("school.year"),
		SheetsBaseURL:     v.GetString("sheets.base_url"),
		DriveBaseURL:      v.GetString("drive.base_url"),
	}

	if cfg.SpreadsheetName == "" {
		return Config{}, fmt.Errorf("spreadsheet name must not be empty")
	}

	return cfg, nil
}
