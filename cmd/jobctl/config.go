package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SQLitePath     string `envconfig:"JOBCTL_SQLITE_PATH" default:"data/whisperwall.db"`
	BadgerFilepath string `envconfig:"JOBCTL_BADGER_FILEPATH" default:"data/audit"`
	Colours        bool   `envconfig:"JOBCTL_COLOURS" default:"true"`
	LogLevel       string `envconfig:"JOBCTL_LOG_LEVEL" default:"WARN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
