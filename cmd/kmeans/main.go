// Command kmeans reads points, one per line, and prints K centroids computed
// with Lloyd's algorithm.
//
// Usage:
//
//	kmeans [flags] K [max_iter] < points.csv
//
// K must satisfy 1 < K < N and max_iter 1 <= max_iter < 1000 (default 200).
// The convergence threshold is fixed at 0.001. Each output line holds one
// centroid with four decimals per coordinate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/internal/pointset"
	"github.com/hupe1980/kmeans/internal/resource"
	"github.com/hupe1980/kmeans/internal/textio"
)

const (
	msgInvalidK    = "Invalid number of clusters!"
	msgInvalidIter = "Invalid maximum iteration!"
	msgAllocation  = "Failed to allocate memory"
	msgGeneric     = "An Error Has Occurred"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	input     string
	json      bool
	codec     string
	logLevel  string
	logFormat string
	memLimit  int64
	ioLimit   int64
	args      []string
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: kmeans [flags] K [max_iter]")
		fs.PrintDefaults()
	}

	f := &flags{}
	fs.StringVar(&f.input, "input", "-", "input `URI`: file path, s3://bucket/key[?concurrency=N], minio://host/bucket/key[?secure=true] or - for stdin")
	fs.BoolVar(&f.json, "json", false, "read a JSON fit request and write a JSON response")
	fs.StringVar(&f.codec, "codec", codec.Default.Name(), "JSON codec for -json: "+strings.Join(codec.Names, " or "))
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	fs.Int64Var(&f.memLimit, "mem-limit", 0, "memory budget in `bytes` (0 = unlimited)")
	fs.Int64Var(&f.ioLimit, "io-limit", 0, "input read limit in `bytes` per second (0 = unlimited)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.args = fs.Args()
	return f, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stdout, msgGeneric)
		return 1
	}

	logger, err := kmeans.NewLoggerFromFlags(stderr, f.logLevel, f.logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stdout, msgGeneric)
		return 1
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   f.memLimit,
		IOLimitBytesPerSec: f.ioLimit,
	})

	r, err := openInput(ctx, f.input, stdin)
	if err != nil {
		logger.LogLoad(f.input, 0, 0, err)
		return report(stdout, err)
	}
	defer r.Close()
	in := resource.NewRateLimitedReader(ctx, r, rc)

	if f.json {
		err = runJSON(in, stdout, f, logger)
	} else {
		err = runBatch(ctx, in, stdout, f, rc, logger)
	}
	if err != nil {
		logger.Error("kmeans failed", "input", f.input, "error", err)
		return report(stdout, err)
	}
	return 0
}

// runBatch reads text points, validates the positional arguments against the
// number of points read and prints the centroids.
func runBatch(ctx context.Context, in io.Reader, stdout io.Writer, f *flags, rc *resource.Controller, logger *kmeans.Logger) error {
	scope := resource.NewScope(rc)
	defer scope.Close()

	b := pointset.NewBuilder(scope)
	if _, err := textio.ReadPoints(in, b); err != nil {
		logger.LogLoad(f.input, b.Len(), b.Dim(), err)
		return err
	}

	cfg, err := parseArgs(f.args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(b.Len()); err != nil {
		return err
	}

	points, err := b.Build()
	if err != nil {
		logger.LogLoad(f.input, b.Len(), b.Dim(), err)
		return err
	}
	logger.LogLoad(f.input, points.Len(), points.Dim(), nil)

	fitLogger := logger.WithK(cfg.K).WithDimension(points.Dim())
	driver, err := ikmeans.NewDriver(cfg,
		ikmeans.WithLogger(fitLogger.Logger),
		ikmeans.WithController(rc),
	)
	if err != nil {
		return err
	}

	res, err := driver.RunContext(ctx, points)
	if err != nil {
		fitLogger.LogFit(points.Len(), 0, false, err)
		return err
	}
	fitLogger.LogFit(points.Len(), res.Iterations, res.Converged(), nil)

	st := rc.Stats()
	logger.Debug("memory budget",
		"peak_bytes", st.Peak,
		"limit_bytes", st.Limit,
	)

	return textio.WriteCentroids(stdout, res.Centroids.Rows())
}

// runJSON decodes one fit request from in and writes the response.
func runJSON(in io.Reader, stdout io.Writer, f *flags, logger *kmeans.Logger) error {
	if len(f.args) > 0 {
		return fmt.Errorf("%w: positional arguments are not used with -json", errUsage)
	}

	c, ok := codec.ByName(f.codec)
	if !ok {
		return fmt.Errorf("%w: unknown codec %q", errUsage, f.codec)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		logger.LogLoad(f.input, 0, 0, err)
		return err
	}

	out, err := kmeans.FitJSON(data,
		kmeans.WithCodec(c),
		kmeans.WithLogger(logger),
		kmeans.WithMemoryLimit(f.memLimit),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

// parseArgs reads K and the optional iteration budget. A value that is not an
// integer fails validation like an out-of-range one.
func parseArgs(args []string) (ikmeans.Config, error) {
	if len(args) > 2 {
		return ikmeans.Config{}, fmt.Errorf("%w: expected K [max_iter], got %d arguments", errUsage, len(args))
	}

	cfg := ikmeans.DefaultConfig(0)
	if len(args) > 0 {
		cfg.K = parseInt(args[0])
	}
	if len(args) > 1 {
		cfg.MaxIterations = parseInt(args[1])
	}
	return cfg, nil
}

// parseInt accepts an optional minus sign followed by digits. Anything else
// maps to 0, which no range accepts.
func parseInt(s string) int {
	if strings.HasPrefix(s, "+") {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// report prints the diagnostics for err on stdout and returns the exit code.
func report(stdout io.Writer, err error) int {
	for _, line := range diagnose(err) {
		fmt.Fprintln(stdout, line)
	}
	return 1
}

func diagnose(err error) []string {
	var lines []string
	if errors.Is(err, ikmeans.ErrInvalidK) || errors.Is(err, kmeans.ErrInvalidK) {
		lines = append(lines, msgInvalidK)
	}
	if errors.Is(err, ikmeans.ErrInvalidMaxIterations) || errors.Is(err, kmeans.ErrInvalidMaxIterations) {
		lines = append(lines, msgInvalidIter)
	}
	if len(lines) > 0 {
		return lines
	}
	if errors.Is(err, resource.ErrMemoryLimitExceeded) || errors.Is(err, kmeans.ErrResourceExhausted) {
		return []string{msgAllocation}
	}
	return []string{msgGeneric}
}
