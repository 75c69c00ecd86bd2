package main

import (
	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// envConfig carries deployment-wide defaults for the generate and validate
// subcommands so a pinned code shape does not have to be repeated as flags.
// Flags still win over environment values.
type envConfig struct {
	Parts      int      `env:"COUPON_PARTS" envDefault:"3"`       // Number of parts per code
	PartLength int      `env:"COUPON_PART_LENGTH" envDefault:"4"` // Symbols per part, checkdigit included
	BadWords   []string `env:"COUPON_BAD_WORDS" envSeparator:","` // Obfuscated forbidden words, replaces the built-in list
}

func loadEnvConfig() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, err
	}
	return cfg, nil
}
