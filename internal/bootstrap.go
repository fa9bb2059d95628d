package internal

import (
	"chat-metrics/analytics"
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func OpenBadger(config Config, readOnly bool) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(readOnly).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	return db, nil
}

func (c Config) AnalyticsOptions() analytics.Options {
	options := analytics.DefaultOptions()
	options.TopBusyDays = c.TopBusyDays
	options.TopActiveUsers = c.TopActiveUsers
	options.TopEmojis = c.TopEmojis
	options.TopWords = c.TopWords
	return options
}
