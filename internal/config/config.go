package config

import (
	"fmt"
	"os"

	"github.com/anandita-3217/flashdeck/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	BotToken string     `mapstructure:"bot_token" validate:"required"`
	Deck     DeckConfig `mapstructure:"deck"`
	Env      string     `mapstructure:"env" validate:"oneof=development production staging"`
}

type DeckConfig struct {
	// SeedFile is an optional deck file imported once at startup. The
	// deck is otherwise purely in-memory.
	SeedFile string `mapstructure:"seed_file"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("deck.seed_file", "DECK_SEED_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind DECK_SEED_FILE: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
