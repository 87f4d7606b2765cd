package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/jask/doko/internal/game"
)

// Config holds application configuration.
type Config struct {
	Scoring ScoringConfig `mapstructure:"scoring" toml:"scoring"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

// ScoringConfig holds the tunable scoring rules.
type ScoringConfig struct {
	KarlchenBonus int    `mapstructure:"karlchen_bonus" toml:"karlchen_bonus"`
	FoxCredit     string `mapstructure:"fox_credit" toml:"fox_credit"`
}

// UIConfig holds interaction settings.
type UIConfig struct {
	StayInAddPlayer bool `mapstructure:"stay_in_add_player" toml:"stay_in_add_player"`
	MaxNameLength   int  `mapstructure:"max_name_length" toml:"max_name_length"`
}

// LogConfig holds logging settings. An empty File discards log output.
type LogConfig struct {
	File string `mapstructure:"file" toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	rules := game.DefaultRules()
	return Config{
		Scoring: ScoringConfig{KarlchenBonus: rules.KarlchenBonus, FoxCredit: string(rules.FoxCredit)},
		UI:      UIConfig{MaxNameLength: 24},
	}
}

// DefaultPath is where Load looks when neither a path nor DOKO_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "doko", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DOKO_.
// path takes precedence over DOKO_CONFIG; a missing file is only an error when
// it was asked for explicitly.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("scoring.karlchen_bonus", def.Scoring.KarlchenBonus)
	v.SetDefault("scoring.fox_credit", def.Scoring.FoxCredit)
	v.SetDefault("ui.stay_in_add_player", def.UI.StayInAddPlayer)
	v.SetDefault("ui.max_name_length", def.UI.MaxNameLength)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("DOKO_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOKO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if c.UI.MaxNameLength <= 0 {
		return fmt.Errorf("ui.max_name_length must be positive, got %d", c.UI.MaxNameLength)
	}
	return nil
}

// Rules converts the scoring section for the game session.
func (c Config) Rules() game.Rules {
	return game.Rules{
		KarlchenBonus: c.Scoring.KarlchenBonus,
		FoxCredit:     game.FoxCredit(strings.ToLower(strings.TrimSpace(c.Scoring.FoxCredit))),
	}
}

// WriteDefault writes the built-in configuration as TOML to path. An existing
// file is left alone.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("# doko configuration\n\n"); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
