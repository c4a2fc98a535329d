package alarm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/oshokin/sunrise-alarm/internal/clock"
	"github.com/oshokin/sunrise-alarm/internal/config"
	"github.com/oshokin/sunrise-alarm/internal/logger"
	"github.com/oshokin/sunrise-alarm/internal/service/fade"
	"github.com/oshokin/sunrise-alarm/internal/service/instance"
	"github.com/oshokin/sunrise-alarm/internal/strip"
)

// Options controls the alarm process.
type Options struct {
	// ConfigPath specifies the path to the settings file.
	ConfigPath string
	// Simulate drives a log-only strip instead of the hardware.
	Simulate bool
	// Strip overrides the strip driver; the caller keeps ownership of it.
	Strip strip.Strip
	// Clock overrides the wall clock.
	Clock clock.Clock
	// Cycles stops after this many ring cycles; 0 runs forever.
	Cycles int
	// SkipInstanceCheck disables the single-instance guard.
	SkipInstanceCheck bool
}

// errOptionsAreNotSet is returned when Run is called without options.
var errOptionsAreNotSet = errors.New("options are not set")

// Run loads the configuration, prepares logging and the strip, then rings
// the alarm until ctx is cancelled. On return the strip is switched off and
// released.
//
//nolint:funlen // Setup steps are sequential and read best together.
func Run(ctx context.Context, opts *Options) (err error) {
	if opts == nil {
		return errOptionsAreNotSet
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}

	defer func() {
		err = errors.Join(err, closeLog())
	}()

	ctx = logger.ToContext(ctx, log)
	ctx = logger.WithName(ctx, "sunrise-alarm")

	logger.DebugKV(ctx, "Running with configuration",
		"time", cfg.Time,
		"days", cfg.Days,
		"fade_in_minutes", cfg.FadeInMinutes,
		"last_for_minutes_after_alarm", cfg.LastForMinutesAfterAlarm,
		"led_count", cfg.LEDCount,
		"steps_per_second", cfg.StepsPerSecond,
	)

	if !opts.SkipInstanceCheck {
		if err = instance.EnsureSingle(ctx); err != nil {
			return err
		}
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	ledStrip, release, err := openStrip(ctx, cfg, opts)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, release())
	}()

	if err = strip.Initialize(ctx, ledStrip, cfg.Fill); err != nil {
		return err
	}

	runner := fade.NewRunner(ledStrip, clk, cfg.StepsPerSecond)
	loop := NewLoop(cfg.Schedule, runner, ledStrip, clk, WithCycles(opts.Cycles))

	return loop.Run(ctx)
}

// newLogger builds the process logger from the configuration. The returned
// function flushes it and closes the log file.
func newLogger(cfg *config.Config) (*zap.SugaredLogger, func() error, error) {
	level := zap.NewAtomicLevelAt(cfg.Level)

	if cfg.LogPath == "" {
		log := logger.New(level)

		return log, func() error {
			_ = log.Sync()

			return nil
		}, nil
	}

	file, err := logger.NewRotatingFile(cfg.LogFileOptions())
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewWithFile(level, file)

	return log, func() error {
		_ = log.Sync()

		return closeLogFile(file)
	}, nil
}

// openStrip picks the strip driver. The returned function switches the strip
// off and releases it unless the caller supplied the strip.
func openStrip(ctx context.Context, cfg *config.Config, opts *Options) (strip.Strip, func() error, error) {
	if opts.Strip != nil {
		return opts.Strip, func() error {
			return turnOff(ctx, opts.Strip)
		}, nil
	}

	var (
		ledStrip strip.Strip
		err      error
	)

	if opts.Simulate {
		ledStrip = strip.NewSimulated(logger.FromContext(ctx).Named("strip"), cfg.StripOptions())
	} else if ledStrip, err = strip.Open(cfg.StripOptions()); err != nil {
		return nil, nil, fmt.Errorf("open LED strip: %w", err)
	}

	return ledStrip, func() error {
		return errors.Join(turnOff(ctx, ledStrip), ledStrip.Close())
	}, nil
}

// turnOff switches the strip off on the way out.
func turnOff(ctx context.Context, s strip.Strip) error {
	if err := s.SetBrightness(0); err != nil {
		logger.ErrorKV(ctx, "Failed to turn strip off", "error", err)

		return fmt.Errorf("turn strip off: %w", err)
	}

	logger.Info(ctx, "Strip turned off")

	return nil
}

func closeLogFile(c io.Closer) error {
	if err := c.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}

	return nil
}
