package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names recognized as overrides.
const (
	EnvCity      = "SHOLAT_CITY"
	EnvCountry   = "SHOLAT_COUNTRY"
	EnvTimezone  = "SHOLAT_TIMEZONE"
	EnvZoneLabel = "SHOLAT_ZONE_LABEL"
	EnvMethod    = "SHOLAT_METHOD"
	EnvBaseURL   = "SHOLAT_API_BASE_URL"
	EnvTimeout   = "SHOLAT_API_TIMEOUT"
)

// LoadDotEnv loads variables from the given dotenv files into the process
// environment without overriding variables that are already set.
// Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to stat env file: %w", err)
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// EnvOverrides reads SHOLAT_* variables into a FileConfig shaped overlay.
// Unset variables leave the corresponding field nil.
func EnvOverrides(getenv func(string) string) (FileConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	var cfg FileConfig
	cfg.Location.City = envString(getenv, EnvCity)
	cfg.Location.Country = envString(getenv, EnvCountry)
	cfg.Location.Timezone = envString(getenv, EnvTimezone)
	cfg.Location.ZoneLabel = envString(getenv, EnvZoneLabel)
	cfg.API.BaseURL = envString(getenv, EnvBaseURL)

	method, err := envInt(getenv, EnvMethod)
	if err != nil {
		return FileConfig{}, err
	}
	cfg.Location.Method = method
	timeout, err := envInt(getenv, EnvTimeout)
	if err != nil {
		return FileConfig{}, err
	}
	cfg.API.TimeoutSeconds = timeout
	return cfg, nil
}

// Merge returns base with every non-nil field of overlay applied on top.
func Merge(base, overlay FileConfig) FileConfig {
	out := base
	pick(&out.Location.City, overlay.Location.City)
	pick(&out.Location.Country, overlay.Location.Country)
	pick(&out.Location.Timezone, overlay.Location.Timezone)
	pick(&out.Location.ZoneLabel, overlay.Location.ZoneLabel)
	pick(&out.Location.Method, overlay.Location.Method)
	pick(&out.API.BaseURL, overlay.API.BaseURL)
	pick(&out.API.TimeoutSeconds, overlay.API.TimeoutSeconds)
	return out
}

func pick[T any](target **T, value *T) {
	if value != nil {
		*target = value
	}
}

func envString(getenv func(string) string, name string) *string {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return nil
	}
	return &v
}

func envInt(getenv func(string) string, name string) (*int, error) {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &n, nil
}
