package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	profile "github.com/grindlemire/go-profile"
)

// settings holds the demo's resolved options.
type settings struct {
	Profile      string        `mapstructure:"profile"`
	DebugLog     string        `mapstructure:"debug_log"`
	Panes        int           `mapstructure:"panes"`
	Rows         int           `mapstructure:"rows"`
	RefreshDelay time.Duration `mapstructure:"refresh_delay"`
}

// flagKeys maps settings keys to the flag that can override them.
var flagKeys = map[string]string{
	"profile":       "profile",
	"debug_log":     "debug-log",
	"panes":         "panes",
	"rows":          "rows",
	"refresh_delay": "refresh-delay",
}

// loadSettings resolves settings from defaults, an optional profiledemo.yaml
// in dir, PROFILEDEMO_ env vars and cmd's flags, in increasing precedence.
func loadSettings(cmd *cobra.Command, dir string) (settings, error) {
	v := viper.New()

	v.SetDefault("profile", "")
	v.SetDefault("debug_log", "")
	v.SetDefault("panes", 3)
	v.SetDefault("rows", 40)
	v.SetDefault("refresh_delay", "1200ms")

	v.SetConfigName("profiledemo")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("PROFILEDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return settings{}, fmt.Errorf("bind %s: %w", name, err)
			}
		}
	}

	// read settings file if present
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.Panes < 1 {
		return settings{}, fmt.Errorf("panes must be at least 1, got %d", s.Panes)
	}
	if s.Rows < 0 {
		return settings{}, fmt.Errorf("rows must not be negative, got %d", s.Rows)
	}
	return s, nil
}

// profileConfig loads the transition configuration named by s, or the
// defaults when none is set.
func (s settings) profileConfig() (profile.Config, error) {
	if s.Profile == "" {
		return profile.DefaultConfig(), nil
	}
	return profile.LoadConfigFile(s.Profile)
}
