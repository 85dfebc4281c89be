package config

import (
	"flag"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress       = ":8080"
	DefaultUnitPrice        = 2.00
	DefaultSameDaySurcharge = 3.00
	DefaultCurrencySymbol   = "$"
	DefaultLocale           = "en-US"
	DefaultLogLevel         = "info"
)

type Config struct {
	RunAddress       string  `env:"RUN_ADDRESS"`
	UnitPrice        float64 `env:"UNIT_PRICE"`
	SameDaySurcharge float64 `env:"SAME_DAY_SURCHARGE"`
	CurrencySymbol   string  `env:"CURRENCY_SYMBOL"`
	Locale           string  `env:"LOCALE"`
	LogLevel         string  `env:"LOG_LEVEL"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.Float64Var(&config.UnitPrice, "u", DefaultUnitPrice, "Price of a single cupcake")
	flag.Float64Var(&config.SameDaySurcharge, "s", DefaultSameDaySurcharge, "Surcharge for same day pickup")
	flag.StringVar(&config.CurrencySymbol, "c", DefaultCurrencySymbol, "Currency symbol used in prices")
	flag.StringVar(&config.Locale, "l", DefaultLocale, "Locale for number formatting (BCP 47)")
	flag.StringVar(&config.LogLevel, "v", DefaultLogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
