package config

import (
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/kudos/internal/domain"
)

type Config struct {
	Address string `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLvl  string `env:"LOG_LVL"     envDefault:"info"`

	CreditUnitValue  float64         `env:"KUDOS_CREDIT_UNIT_VALUE" envDefault:"1.0"`
	MonthlyLimit     decimal.Decimal `env:"KUDOS_MONTHLY_LIMIT"     envDefault:"5000"`
	ExpirationMonths int             `env:"KUDOS_EXPIRATION_MONTHS" envDefault:"12"`
	MinRating        float64         `env:"KUDOS_MIN_RATING"        envDefault:"3.0"`
	CleanupInterval  time.Duration   `env:"CLEANUP_INTERVAL"        envDefault:"1h"`

	MeterAddress      string        `env:"METER_SYSTEM_ADDRESS"`
	MeterPollInterval time.Duration `env:"METER_POLL_INTERVAL" envDefault:"30s"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"   envDefault:"kudos.transactions"`

	JWTSecret string `env:"JWT_SECRET"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.DurationVar(&cfg.CleanupInterval, "c", cfg.CleanupInterval, "interval between expired record cleanups")
	flag.StringVar(&cfg.MeterAddress, "m", cfg.MeterAddress, "metering system address and port")
	flag.Parse()

	if cfg.MeterAddress != "" &&
		!strings.HasPrefix(cfg.MeterAddress, "http://") && !strings.HasPrefix(cfg.MeterAddress, "https://") {
		cfg.MeterAddress = "http://" + cfg.MeterAddress
	}

	return cfg
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Address, validation.Required),
		validation.Field(&c.CreditUnitValue, validation.Min(0.0).Exclusive()),
		validation.Field(&c.MonthlyLimit, validation.By(positiveDecimal)),
		validation.Field(&c.ExpirationMonths, validation.Min(1)),
		validation.Field(&c.MinRating, validation.Min(domain.MinRatingScore), validation.Max(domain.MaxRatingScore)),
		validation.Field(&c.CleanupInterval, validation.Min(time.Duration(0)).Exclusive()),
		validation.Field(&c.MeterPollInterval, validation.When(c.MeterAddress != "",
			validation.Min(time.Duration(0)).Exclusive())),
	)
}

func positiveDecimal(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
}

func (c *Config) LedgerSettings() domain.Settings {
	return domain.Settings{
		CreditUnitValue:  c.CreditUnitValue,
		MonthlyLimit:     c.MonthlyLimit,
		ExpirationMonths: c.ExpirationMonths,
		MinRating:        c.MinRating,
	}
}
