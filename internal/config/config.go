// Package config loads and validates application configuration.
package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Database driver names.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Decks     DecksConfig     `mapstructure:"decks"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite mysql"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path"`

	// The remaining fields apply to the MySQL driver only.
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type SchedulerConfig struct {
	// RolloverHour is the local hour at which the study day ends.
	RolloverHour int `mapstructure:"rollover_hour" validate:"gte=0,lte=23"`
	// QueueLimit caps how many cards one deck probe loads at a time.
	QueueLimit int `mapstructure:"queue_limit" validate:"gt=0"`
	// ReportLimit caps displayed due counts.
	ReportLimit int `mapstructure:"report_limit" validate:"gt=0"`
	// NewCardOrder places new cards before or after due reviews.
	NewCardOrder string `mapstructure:"new_card_order" validate:"oneof=after-reviews before-reviews"`
	// LearningStepsMinutes is the delay ladder for learning cards.
	LearningStepsMinutes []int `mapstructure:"learning_steps_minutes" validate:"min=1,dive,gt=0"`
	// MaxIntervalDays caps review intervals. Zero means no cap.
	MaxIntervalDays int `mapstructure:"max_interval_days" validate:"gte=0"`
}

// NewFirst reports whether new cards are served before due reviews.
func (c SchedulerConfig) NewFirst() bool {
	return c.NewCardOrder == "before-reviews"
}

type DecksConfig struct {
	// Default daily limits for newly created decks.
	DefaultNewPerDay int `mapstructure:"default_new_per_day" validate:"gte=-1"`
	DefaultRevPerDay int `mapstructure:"default_rev_per_day" validate:"gte=-1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/decksched")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "decksched.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "decksched")
	v.SetDefault("database.username", "user")
	v.SetDefault("scheduler.rollover_hour", 4)
	v.SetDefault("scheduler.queue_limit", 50)
	v.SetDefault("scheduler.report_limit", 1000)
	v.SetDefault("scheduler.new_card_order", "after-reviews")
	v.SetDefault("scheduler.learning_steps_minutes", []int{1, 10})
	v.SetDefault("scheduler.max_interval_days", 36500)
	v.SetDefault("decks.default_new_per_day", 20)
	v.SetDefault("decks.default_rev_per_day", 200)

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
