package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
)

var ErrWrongArgs = errors.New("wrong args")

const usage = `hpdcheck [flags] [file ...]

Reads decimal numerals, one per line, from the files (or stdin) and compares
the correctly rounded conversion against strconv.ParseFloat. Blank lines and
lines starting with # are skipped.

Flags:
`

type Config struct {
	Workers int
	Bits    int
	Verbose bool

	Files []string
}

// newConfig parses the command line arguments (without the program name).
func newConfig(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("hpdcheck", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Workers, "workers", runtime.GOMAXPROCS(0), "number of concurrent workers")
	fs.IntVar(&cfg.Bits, "bits", 0, "float width to check: 32, 64, or 0 for both")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "development logging")

	err := fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongArgs, err)
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive: %d", ErrWrongArgs, cfg.Workers)
	}

	switch cfg.Bits {
	case 0, 32, 64:
	default:
		return nil, fmt.Errorf("%w: unsupported bits: %d", ErrWrongArgs, cfg.Bits)
	}

	cfg.Files = fs.Args()

	return cfg, nil
}

// widths returns the float sizes selected by the configuration.
func (cfg *Config) widths() []int {
	if cfg.Bits == 0 {
		return []int{32, 64}
	}

	return []int{cfg.Bits}
}
