package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/dayplan/pkg/slot"
)

// ConfigPathEnv names a directory searched for .dayplan.yaml before the
// working directory.
const ConfigPathEnv = "DAYPLAN_CONFIG_PATH"

// Config carries everything needed to open the store and the planner.
type Config interface {
	BasePath() string
	Granularity() slot.Granularity
	LogPath() string
	Debug() bool
}

// LoadConfig reads .dayplan.yaml from $DAYPLAN_CONFIG_PATH or the working
// directory, with DAYPLAN_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.dayplan.db")
	v.SetDefault("granularity", slot.HalfHourly.String())
	v.SetDefault("log", "")
	v.SetDefault("debug", false)
	v.SetConfigName(".dayplan") // .yaml is implicit
	v.SetEnvPrefix("DAYPLAN")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return configFrom(v)
}

func configFrom(v *viper.Viper) (Config, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	g, err := slot.ParseGranularity(v.GetString("granularity"))
	if err != nil {
		return nil, err
	}
	logPath := v.GetString("log")
	if logPath != "" {
		if logPath, err = homedir.Expand(logPath); err != nil {
			return nil, fmt.Errorf("store: expand log path: %w", err)
		}
	}
	return &fileConfig{
		Path:       path,
		Grain:      g,
		Log:        logPath,
		DebugLevel: v.GetBool("debug"),
	}, nil
}

type fileConfig struct {
	Path       string           `json:"path"`
	Grain      slot.Granularity `json:"granularity"`
	Log        string           `json:"log"`
	DebugLevel bool             `json:"debug"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Granularity() slot.Granularity {
	return f.Grain
}

func (f *fileConfig) LogPath() string {
	return f.Log
}

func (f *fileConfig) Debug() bool {
	return f.DebugLevel
}

// StaticConfig is a Config built in code, mostly for tests and embedding.
type StaticConfig struct {
	Path  string
	Grain slot.Granularity
	Log   string
	Trace bool
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Granularity() slot.Granularity {
	if s.Grain == 0 {
		return slot.HalfHourly
	}
	return s.Grain
}

func (s StaticConfig) LogPath() string { return s.Log }

func (s StaticConfig) Debug() bool { return s.Trace }
