// Package config loads lockd settings from a YAML file with viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/julianstephens/lockd/internal/constants"
	"github.com/julianstephens/lockd/internal/notifier"
	"github.com/julianstephens/lockd/internal/planner"
	"github.com/julianstephens/lockd/internal/utils"
)

type NotificationsConfig struct {
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	TrayIdentifier string `mapstructure:"tray_identifier" yaml:"tray_identifier"`
}

type HabitsConfig struct {
	AchievementPolicy string `mapstructure:"achievement_policy" yaml:"achievement_policy"`
}

type PlannerConfig struct {
	ToggleScope  string `mapstructure:"toggle_scope" yaml:"toggle_scope"`
	StrictRanges bool   `mapstructure:"strict_ranges" yaml:"strict_ranges"`
	Seed         bool   `mapstructure:"seed" yaml:"seed"`
}

// Config is the top-level application configuration.
type Config struct {
	Timezone      string              `mapstructure:"timezone" yaml:"timezone"`
	Debug         bool                `mapstructure:"debug" yaml:"debug"`
	Notifications NotificationsConfig `mapstructure:"notifications" yaml:"notifications"`
	Habits        HabitsConfig        `mapstructure:"habits" yaml:"habits"`
	Planner       PlannerConfig       `mapstructure:"planner" yaml:"planner"`

	// Path is the file the config was read from, empty when defaults were used.
	Path string `mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Timezone: "Local",
		Notifications: NotificationsConfig{
			Enabled:        true,
			TrayIdentifier: constants.TrayAppIdentifier,
		},
		Habits:  HabitsConfig{AchievementPolicy: planner.AchievementOnGoalReached.String()},
		Planner: PlannerConfig{ToggleScope: planner.ToggleAnyDay.String(), Seed: true},
	}
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return expanded, nil
}

// Load reads path. A missing file yields Default. LOCKD_* environment
// variables override file values, e.g. LOCKD_PLANNER_STRICT_RANGES=true.
func Load(path string) (*Config, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	def := Default()
	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("notifications.enabled", def.Notifications.Enabled)
	v.SetDefault("notifications.tray_identifier", def.Notifications.TrayIdentifier)
	v.SetDefault("habits.achievement_policy", def.Habits.AchievementPolicy)
	v.SetDefault("planner.toggle_scope", def.Planner.ToggleScope)
	v.SetDefault("planner.strict_ranges", def.Planner.StrictRanges)
	v.SetDefault("planner.seed", def.Planner.Seed)

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", expanded, err)
		}
		found = false
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", expanded, err)
	}
	if found {
		cfg.Path = expanded
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", expanded, err)
	}
	return cfg, nil
}

// Validate checks enumerated values and the timezone.
func (c *Config) Validate() error {
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	if _, err := planner.ParseAchievementPolicy(c.Habits.AchievementPolicy); err != nil {
		return err
	}
	if _, err := planner.ParseToggleScope(c.Planner.ToggleScope); err != nil {
		return err
	}
	return nil
}

// Dir returns the directory holding the config file, used for logs.
func (c *Config) Dir() (string, error) {
	if c.Path != "" {
		return filepath.Dir(c.Path), nil
	}
	p, err := ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Location loads the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

// Notifier returns the tray notifier settings.
func (c *Config) Notifier() notifier.Config {
	nc := notifier.DefaultConfig()
	nc.Enabled = c.Notifications.Enabled
	if c.Notifications.TrayIdentifier != "" {
		nc.TrayIdentifier = c.Notifications.TrayIdentifier
	}
	return nc
}

// PlannerOptions translates planner and habit settings into store options.
func (c *Config) PlannerOptions() ([]planner.Option, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	policy, err := planner.ParseAchievementPolicy(c.Habits.AchievementPolicy)
	if err != nil {
		return nil, err
	}
	scope, err := planner.ParseToggleScope(c.Planner.ToggleScope)
	if err != nil {
		return nil, err
	}
	return []planner.Option{
		planner.WithLocation(loc),
		planner.WithAchievementPolicy(policy),
		planner.WithToggleScope(scope),
		planner.WithStrictRanges(c.Planner.StrictRanges),
	}, nil
}
