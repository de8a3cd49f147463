package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"` // local, dev, production
	HTTP    HTTP    `mapstructure:"http"`
	DB      DB      `mapstructure:"db"`
	Quiz    Quiz    `mapstructure:"quiz"`
	Cookies Cookies `mapstructure:"cookies"`
	CORS    CORS    `mapstructure:"cors"`
}

type HTTP struct {
	Port string `mapstructure:"port"`
}

type DB struct {
	Path string `mapstructure:"path"` // sqlite file
}

type Quiz struct {
	BatchSize int `mapstructure:"batch_size"` // questions per batch
}

type Cookies struct {
	Secure bool `mapstructure:"secure"` // true behind HTTPS
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"` // localhost:* is always allowed
}

// Load reads ./config/config.yaml if present, then environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("http.port", "8080")
	v.SetDefault("db.path", "kanaquiz.db")
	v.SetDefault("quiz.batch_size", 50)
	v.SetDefault("cookies.secure", false)
	v.SetDefault("cors.allowed_origins", []string{})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("http.port", "PORT")
	_ = v.BindEnv("cookies.secure", "SECURE_COOKIES")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Port) == "" {
		return fmt.Errorf("%w: http.port is empty", ErrInvalidConfig)
	}
	if c.Quiz.BatchSize < 1 {
		return fmt.Errorf("%w: quiz.batch_size must be > 0 (got %d)", ErrInvalidConfig, c.Quiz.BatchSize)
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		return fmt.Errorf("%w: db.path is empty", ErrInvalidConfig)
	}
	return nil
}

// Production reports whether the app runs in production.
func (c *Config) Production() bool {
	return c.Env == "production"
}
