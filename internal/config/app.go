package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = "config.json"

// AppConfig holds display metadata shown in the header. It has no effect on
// which commands exist or how they run.
type AppConfig struct {
	AppName string `mapstructure:"app_name" json:"app_name"`
	Version string `mapstructure:"version" json:"version"`
	Author  string `mapstructure:"author" json:"author"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		AppName: "System Update Manager",
		Version: "0.1.0",
		Author:  "z3r0dr34d",
	}
}

// FormatError is returned when a config file exists but cannot be decoded.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid configuration format in %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Load reads the JSON config at path. A missing file yields Default; keys
// absent from the file keep their default values. A file that exists but is
// not valid JSON returns a *FormatError.
func Load(path string) (AppConfig, error) {
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return AppConfig{}, fmt.Errorf("unable to read configuration file: %w", err)
	}

	v := viper.New()
	defaults := Default()
	v.SetDefault("app_name", defaults.AppName)
	v.SetDefault("version", defaults.Version)
	v.SetDefault("author", defaults.Author)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return AppConfig{}, &FormatError{Path: path, Err: err}
		}
		return AppConfig{}, fmt.Errorf("unable to read configuration file: %w", err)
	}
	var c AppConfig
	if err := v.Unmarshal(&c); err != nil {
		return AppConfig{}, &FormatError{Path: path, Err: err}
	}
	return c, nil
}

// Save writes c to path as indented JSON.
func Save(path string, c AppConfig) error {
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to write configuration file: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
