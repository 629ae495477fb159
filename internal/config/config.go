// Package config loads process configuration from the environment. All
// variables use the LEO_ prefix except the child defaults, which keep the
// CHILD_NAME and CHILD_GRADE names used by existing .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DataDir      string
	ProfilesPath string
	DBPath       string
	Font         FontConfig
	Log          LogConfig
	Server       ServerConfig
	Child        ChildConfig
}

// FontConfig locates a TrueType font with Hangul glyphs for exports.
type FontConfig struct {
	Path string
	URL  string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Mode  string // "dev" or "prod"
	Level string // empty keeps the mode default
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port int
	// CORSOrigins lists browser origins allowed to call the API. Empty
	// disables CORS handling.
	CORSOrigins []string
}

// ChildConfig holds the single-child fallback profile values.
type ChildConfig struct {
	Name  string
	Grade string
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MissionsDir is where per-child mission files live.
func (c *Config) MissionsDir() string {
	return filepath.Join(c.DataDir, "missions")
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:      envStr("LEO_DATA_DIR", "./leo-data"),
		ProfilesPath: envStr("LEO_PROFILES", ""),
		DBPath:       envStr("LEO_DB", ""),
		Font: FontConfig{
			Path: envStr("LEO_FONT_PATH", ""),
			URL:  envStr("LEO_FONT_URL", ""),
		},
		Log: LogConfig{
			Mode:  envStr("LEO_LOG_MODE", "dev"),
			Level: envStr("LEO_LOG_LEVEL", ""),
		},
		Server: ServerConfig{
			Host: envStr("LEO_SERVER_HOST", "127.0.0.1"),
			Port: envInt("LEO_SERVER_PORT", 8080),

			CORSOrigins: envList("LEO_CORS_ORIGINS"),
		},
		Child: ChildConfig{
			Name:  strings.TrimSpace(os.Getenv("CHILD_NAME")),
			Grade: strings.TrimSpace(os.Getenv("CHILD_GRADE")),
		},
	}
	cfg.fillDerived()
	return cfg, cfg.Validate()
}

// Override applies non-empty command-line values on top of the
// environment. Paths derived from the data directory follow it unless
// they were set explicitly.
func (c *Config) Override(dataDir, profilesPath, dbPath string) {
	if dataDir != "" && dataDir != c.DataDir {
		if c.ProfilesPath == filepath.Join(c.DataDir, "profiles.yaml") {
			c.ProfilesPath = ""
		}
		if c.DBPath == filepath.Join(c.DataDir, "leo.db") {
			c.DBPath = ""
		}
		c.DataDir = dataDir
	}
	if profilesPath != "" {
		c.ProfilesPath = profilesPath
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	c.fillDerived()
}

func (c *Config) fillDerived() {
	if c.ProfilesPath == "" {
		c.ProfilesPath = filepath.Join(c.DataDir, "profiles.yaml")
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "leo.db")
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("LEO_DATA_DIR must not be empty")
	}
	if c.Log.Mode != "dev" && c.Log.Mode != "prod" {
		return fmt.Errorf("LEO_LOG_MODE must be 'dev' or 'prod', got %q", c.Log.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("LEO_SERVER_PORT out of range: %d", c.Server.Port)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}
