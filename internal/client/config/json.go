package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/flagx"
	"github.com/afriwallet/afriwallet/internal/timex"
)

type jsonConfig struct {
	ServerBaseURL      string         `json:"server_base_url"`
	DatabasePath       string         `json:"database_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DefaultCountryCode string         `json:"default_country_code"`
	LogLevel           string         `json:"log_level"`
}

// parseJSON overlays values from the JSON config file named by the
// -c/-config flag or the CONFIG environment variable. Missing file name
// means no overlay; an unreadable or malformed file is reported and skipped.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		path = os.Getenv("CONFIG")
	}
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error reading config file:", err)
		return
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		fmt.Fprintln(os.Stderr, "error parsing config file:", err)
		return
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DefaultCountryCode != "" {
		cfg.DefaultCountryCode = jc.DefaultCountryCode
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
