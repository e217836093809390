// Command hpdcheck cross-checks decimal to float conversion against the Go
// runtime.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stderr))
}

func newLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.Verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
}

// run returns the process exit status: 0 when everything matched, 1 on
// mismatches or failures, 2 on bad arguments.
func run(ctx context.Context, args []string, stdin io.Reader, stderr io.Writer) int {
	cfg, err := newConfig(args, stderr)
	if err != nil {
		if !errors.Is(err, ErrWrongArgs) {
			panic(fmt.Errorf("unexpected config error: %w", err))
		}
		fmt.Fprintln(stderr, err)

		return 2
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(fmt.Errorf("error create logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	numerals, err := load(cfg.Files, stdin)
	if err != nil {
		logger.Error("load failed", zap.Error(err))

		return 1
	}

	logger.Info("check started",
		zap.Int("numerals", len(numerals)),
		zap.Int("workers", cfg.Workers),
		zap.Ints("widths", cfg.widths()),
	)

	c := &checker{
		log:    logger,
		ref:    strconv.ParseFloat,
		widths: cfg.widths(),
	}

	mismatches, err := c.run(ctx, cfg.Workers, numerals)
	if err != nil {
		logger.Error("check failed", zap.Error(err))

		return 1
	}

	logger.Info("check finished",
		zap.Int64("checked", c.checked.Load()),
		zap.Int64("mismatches", mismatches),
	)

	if mismatches > 0 {
		return 1
	}

	return 0
}
