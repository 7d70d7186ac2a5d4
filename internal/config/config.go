// Package config provides configuration utilities for the application.
// All values come from Viper, which reads ~/.config/vlb/config.yaml and
// VLB_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when the config file and environment leave a key
// unset.
const (
	DefaultBaseURL     = "http://localhost:3001/api"
	DefaultTimeout     = 30 * time.Second
	DefaultPageSize    = 10
	DefaultMonths      = 6
	DefaultRecentLimit = 10
)

// Config carries the resolved application settings.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	PageSize    int
	Months      int
	RecentLimit int
}

// SetDefaults registers the default values with Viper. Called once from
// the root command before any config is read.
func SetDefaults() {
	viper.SetDefault("api.base_url", DefaultBaseURL)
	viper.SetDefault("api.timeout", DefaultTimeout)
	viper.SetDefault("ui.page_size", DefaultPageSize)
	viper.SetDefault("ui.months", DefaultMonths)
	viper.SetDefault("ui.recent", DefaultRecentLimit)
}

// Load resolves the current settings from Viper.
func Load() Config {
	cfg := Config{
		BaseURL:     strings.TrimRight(viper.GetString("api.base_url"), "/"),
		Timeout:     viper.GetDuration("api.timeout"),
		PageSize:    viper.GetInt("ui.page_size"),
		Months:      viper.GetInt("ui.months"),
		RecentLimit: viper.GetInt("ui.recent"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Months < 1 {
		cfg.Months = DefaultMonths
	}
	if cfg.RecentLimit < 1 {
		cfg.RecentLimit = DefaultRecentLimit
	}
	return cfg
}

// TokenPath returns the file the session token is persisted in. It can
// be overridden with the session.token_file key; the default lives next
// to the config file.
func TokenPath() (string, error) {
	if v := viper.GetString("session.token_file"); v != "" {
		return ExpandPath(v), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vlb", "token"), nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
