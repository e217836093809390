package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/hpd/atof"
)

// reference is the converter atof is compared against.
type reference func(s string, bitSize int) (float64, error)

type checker struct {
	log    *zap.Logger
	ref    reference
	widths []int

	checked    atomic.Int64
	mismatches atomic.Int64
}

// run splits the numerals into contiguous shards and checks them with at most
// workers goroutines.
func (c *checker) run(ctx context.Context, workers int, numerals []string) (mismatches int64, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	size := (len(numerals) + workers - 1) / workers

	for start := 0; start < len(numerals); start += size {
		shard := numerals[start:min(start+size, len(numerals))]

		g.Go(func() error {
			return c.shard(ctx, shard)
		})
	}

	err = g.Wait()

	return c.mismatches.Load(), err
}

func (c *checker) shard(ctx context.Context, numerals []string) error {
	for _, s := range numerals {
		err := ctx.Err()
		if err != nil {
			return err
		}

		for _, bits := range c.widths {
			c.check(s, bits)
		}
	}

	return nil
}

// check converts s both ways and logs any difference in bits or in error
// presence.
func (c *checker) check(s string, bitSize int) (ok bool) {
	c.checked.Add(1)

	actual, actualErr := atof.ParseFloat(s, bitSize)
	expected, expectedErr := c.ref(s, bitSize)

	actualBits := floatBits(actual, bitSize)
	expectedBits := floatBits(expected, bitSize)

	if actualBits == expectedBits && (actualErr == nil) == (expectedErr == nil) {
		return true
	}

	c.mismatches.Add(1)

	c.log.Warn("mismatch",
		zap.String("numeral", s),
		zap.Int("bits", bitSize),
		zap.String("actual", fmt.Sprintf("%#x", actualBits)),
		zap.String("expected", fmt.Sprintf("%#x", expectedBits)),
		zap.NamedError("actual_error", actualErr),
		zap.NamedError("expected_error", expectedErr),
	)

	return false
}

func floatBits(f float64, bitSize int) uint64 {
	if bitSize == 32 {
		return uint64(math.Float32bits(float32(f)))
	}

	return math.Float64bits(f)
}

// readNumerals returns the non-blank, non-comment lines of r.
func readNumerals(r io.Reader) (numerals []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		numerals = append(numerals, line)
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read numerals failed: %w", err)
	}

	return numerals, nil
}

// load reads the numerals of every file, or of stdin when there are none.
func load(files []string, stdin io.Reader) (numerals []string, err error) {
	if len(files) == 0 {
		return readNumerals(stdin)
	}

	for _, name := range files {
		ns, err := loadFile(name)
		if err != nil {
			return nil, err
		}

		numerals = append(numerals, ns...)
	}

	return numerals, nil
}

func loadFile(name string) (_ []string, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %q failed: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	return readNumerals(f)
}
