package internal

import "time"

type Config struct {
	LogLevel        string `env:"LOG_LEVEL,required=true"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES"`
	NumberOfWorkers int    `env:"NUMBER_OF_WORKERS,default=4"`
	TopBusyDays     int    `env:"TOP_BUSY_DAYS,default=10"`
	TopActiveUsers  int    `env:"TOP_ACTIVE_USERS,default=5"`
	TopEmojis       int    `env:"TOP_EMOJIS,default=10"`
	TopWords        int    `env:"TOP_WORDS,default=20"`
	Timezone        string `env:"TIMEZONE,default=Local"`
	Colours         bool   `env:"COLOURS,default=true"`
}

// Location resolves TIMEZONE, used for records whose date carries no offset.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
