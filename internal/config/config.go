// Package config resolves settings from defaults, a .todo config file,
// TODO_* environment variables and command-line flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyDataDir  = "data_dir"
	KeyDark     = "dark"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeyColor    = "color"

	// EnvConfigPath names an extra directory searched for the config file.
	EnvConfigPath = "TODO_CONFIG_PATH"

	defaultDataDir = "~/.todo"
	logFileName    = "todo.log"
)

// Config is the resolved configuration.
type Config struct {
	DataDir  string
	Dark     bool
	LogLevel string
	LogFile  string
	Color    string
	// File is the config file that was read, empty when none was found.
	File string
}

// New returns a viper instance with defaults, search paths and env binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataDir, defaultDataDir)
	v.SetDefault(KeyDark, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyColor, "auto")

	v.SetConfigName(".todo")
	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and resolves the final values.
// A missing file is fine; a malformed one is an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	dataDir, err := homedir.Expand(v.GetString(KeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyDataDir, err)
	}
	if strings.TrimSpace(dataDir) == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDataDir)
	}

	logFile := v.GetString(KeyLogFile)
	if logFile == "" {
		logFile = filepath.Join(dataDir, logFileName)
	} else if logFile, err = homedir.Expand(logFile); err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyLogFile, err)
	}

	return &Config{
		DataDir:  dataDir,
		Dark:     v.GetBool(KeyDark),
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:  logFile,
		Color:    strings.ToLower(v.GetString(KeyColor)),
		File:     v.ConfigFileUsed(),
	}, nil
}
