package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kirubel12/hono-artisan/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyCreateDelay = "create_delay"
	KeyNoColor     = "no_color"
	KeyLogLevel    = "log_level"
)

// DefaultCreateDelay is how long the placeholder create step waits.
const DefaultCreateDelay = time.Second

var defaults = map[string]any{
	KeyCreateDelay: DefaultCreateDelay.String(),
	KeyNoColor:     false,
	KeyLogLevel:    "warn",
}

// Keys returns the supported configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a supported configuration key.
func IsKnownKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Dir returns the path to the config directory (~/.hono-artisan/).
// ARTISAN_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.hono-artisan/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error; variables already set are left untouched.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// CreateDelay returns the configured delay for the create step. Values that
// do not parse as a non-negative duration fall back to DefaultCreateDelay.
func CreateDelay() time.Duration {
	d, err := time.ParseDuration(viper.GetString(KeyCreateDelay))
	if err != nil || d < 0 {
		return DefaultCreateDelay
	}
	return d
}

// NoColor reports whether styled output is disabled.
func NoColor() bool {
	return viper.GetBool(KeyNoColor)
}

// LogLevel returns the configured diagnostic log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Set stores one key in the config file. Only keys already in the file and
// the new key are written; defaults and ARTISAN_* overrides stay out of it.
func Set(key, value string) error {
	typed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, typed)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// Refresh the file layer of the global instance; env still wins.
	_ = viper.ReadInConfig()
	return nil
}

// parseValue checks value for key and converts it to the type stored in
// the file.
func parseValue(key, value string) (any, error) {
	switch key {
	case KeyCreateDelay:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", value, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid duration %q: must not be negative", value)
		}
		return value, nil
	case KeyNoColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		return b, nil
	case KeyLogLevel:
		level := strings.ToLower(value)
		if !slices.Contains(LogLevels, level) {
			return nil, fmt.Errorf("invalid log level %q (valid: %s)", value, strings.Join(LogLevels, ", "))
		}
		return level, nil
	default:
		return nil, fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
}
