package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hjson/hjson-go/v4"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
	"github.com/oshokin/sunrise-alarm/internal/logger"
	"github.com/oshokin/sunrise-alarm/internal/service/fade"
	"github.com/oshokin/sunrise-alarm/internal/strip"
)

// Config holds the alarm settings as written in the file plus the
// validated values derived from them.
type Config struct {
	// Time is the wake-up time, "HH:MM" or "HH:MM:SS".
	Time string `json:"time" yaml:"time"`
	// Days lists weekday names the alarm rings on.
	Days []string `json:"days" yaml:"days"`
	// FadeInMinutes is the length of the brightness ramp.
	FadeInMinutes float64 `json:"fade_in_minutes" yaml:"fade_in_minutes"`
	// LastForMinutesAfterAlarm is how long full brightness is held.
	LastForMinutesAfterAlarm float64 `json:"last_for_minutes_after_alarm" yaml:"last_for_minutes_after_alarm"`
	// LogPath enables the rotating log file when set.
	LogPath string `json:"log_path" yaml:"log_path"`
	// LogLevel is the minimum level written to the console and the file.
	LogLevel string `json:"log_level" yaml:"log_level"`
	// LogMaxSizeMB rotates the log file once it grows past this size.
	LogMaxSizeMB int `json:"log_max_size_mb" yaml:"log_max_size_mb"`
	// LogBackups is the number of log files kept.
	LogBackups int `json:"log_backups" yaml:"log_backups"`
	// LEDCount is the number of pixels on the strip.
	LEDCount int `json:"led_count" yaml:"led_count"`
	// GPIOPin is the BCM pin of the strip data line; nil selects the default.
	GPIOPin *int `json:"gpio_pin" yaml:"gpio_pin"`
	// LEDOrder is the color channel order of the strip.
	LEDOrder string `json:"led_order" yaml:"led_order"`
	// Color is the [r, g, b] fill color.
	Color []int `json:"color" yaml:"color"`
	// StepsPerSecond is the ramp resolution.
	StepsPerSecond int `json:"steps_per_second" yaml:"steps_per_second"`

	// Schedule is the validated alarm schedule.
	Schedule *alarm.Schedule `json:"-" yaml:"-"`
	// Level is the parsed LogLevel.
	Level zapcore.Level `json:"-" yaml:"-"`
	// Fill is the parsed Color.
	Fill alarm.Color `json:"-" yaml:"-"`
	// Order is the parsed LEDOrder.
	Order strip.Order `json:"-" yaml:"-"`
}

// DefaultLogLevel is used when log_level is omitted.
const DefaultLogLevel = "info"

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return Parse(contents)
}

// Parse decodes and validates configuration contents.
//
// The contents are read as Hjson first. Files Hjson rejects are retried as
// YAML so flow-style settings keep loading.
func Parse(contents []byte) (*Config, error) {
	cfg, err := decode(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: unmarshal settings: %w", alarm.ErrInvalidConfig, err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(contents []byte) (*Config, error) {
	var cfg Config

	hjsonErr := hjson.Unmarshal(contents, &cfg)
	if hjsonErr == nil {
		return &cfg, nil
	}

	cfg = Config{}
	if yamlErr := yaml.Unmarshal(contents, &cfg); yamlErr != nil {
		return nil, errors.Join(hjsonErr, yamlErr)
	}

	return &cfg, nil
}

// Validate checks required fields, fills defaults and derives the parsed values.
// The configuration is left untouched when a check fails.
//
//nolint:cyclop,funlen // One linear pass over every field reads best.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	hour, minute, second, err := alarm.ParseTimeOfDay(cfg.Time)
	if err != nil {
		return err
	}

	if len(cfg.Days) == 0 {
		return fmt.Errorf("%w: days must list at least one weekday", alarm.ErrInvalidConfig)
	}

	days := make([]alarm.Weekday, 0, len(cfg.Days))

	for _, name := range cfg.Days {
		day, parseErr := alarm.ParseWeekday(name)
		if parseErr != nil {
			return parseErr
		}

		days = append(days, day)
	}

	schedule, err := alarm.NewSchedule(hour, minute, second, days,
		minutes(cfg.FadeInMinutes), minutes(cfg.LastForMinutesAfterAlarm))
	if err != nil {
		return err
	}

	levelName := orDefault(cfg.LogLevel, DefaultLogLevel)

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return fmt.Errorf("%w: unknown log level %q", alarm.ErrInvalidConfig, levelName)
	}

	if cfg.LogMaxSizeMB < 0 || cfg.LogBackups < 0 || cfg.LEDCount < 0 || cfg.StepsPerSecond < 0 {
		return fmt.Errorf("%w: numeric settings must not be negative", alarm.ErrInvalidConfig)
	}

	pin := strip.DefaultGPIOPin
	if cfg.GPIOPin != nil {
		pin = *cfg.GPIOPin
	}

	if pin < 0 {
		return fmt.Errorf("%w: gpio_pin must not be negative", alarm.ErrInvalidConfig)
	}

	orderName := orDefault(cfg.LEDOrder, string(strip.DefaultOrder))

	order, err := strip.ParseOrder(orderName)
	if err != nil {
		return err
	}

	fill := alarm.DefaultColor
	if cfg.Color != nil {
		if fill, err = alarm.ColorFromSlice(cfg.Color); err != nil {
			return err
		}
	}

	cfg.LogLevel = levelName
	cfg.LogMaxSizeMB = orDefault(cfg.LogMaxSizeMB, logger.DefaultMaxSizeMB)
	cfg.LogBackups = orDefault(cfg.LogBackups, logger.DefaultBackups)
	cfg.LEDCount = orDefault(cfg.LEDCount, strip.DefaultLEDCount)
	cfg.GPIOPin = &pin
	cfg.StepsPerSecond = orDefault(cfg.StepsPerSecond, fade.DefaultStepsPerSecond)
	cfg.LEDOrder = orderName
	cfg.Schedule = schedule
	cfg.Level = level
	cfg.Fill = fill
	cfg.Order = order

	return nil
}

// StripOptions returns the strip settings.
func (c *Config) StripOptions() strip.Options {
	pin := strip.DefaultGPIOPin
	if c.GPIOPin != nil {
		pin = *c.GPIOPin
	}

	return strip.Options{
		LEDCount: c.LEDCount,
		GPIOPin:  pin,
		Order:    c.Order,
	}
}

// LogFileOptions returns the rotating log settings.
func (c *Config) LogFileOptions() logger.FileOptions {
	return logger.FileOptions{
		Path:      c.LogPath,
		MaxSizeMB: c.LogMaxSizeMB,
		Backups:   c.LogBackups,
	}
}

// orDefault returns fallback when value is the zero value.
func orDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}

	return value
}

// minutes converts fractional minutes to a duration.
func minutes(value float64) time.Duration {
	return time.Duration(value * float64(time.Minute))
}
