// Command seqstat reads whitespace separated numbers from the standard input
// and writes their summary to the standard output as JSON.
//
// Usage:
//
//	echo "8445 7480 6220 5300 5285" | seqstat -precision 2
//
// Configuration:
//
//	SEQSTAT_PRECISION  number of decimals in the output, -1 keeps the shortest representation
//	SEQSTAT_STRICT     fail on a malformed token instead of summarising the numbers before it
//	LOG_LEVEL          debug, info, warn, error or fatal
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/algokit/internal/summary"
	"go.llib.dev/algokit/pkg/convkit"
	"go.llib.dev/algokit/pkg/env"
	"go.llib.dev/algokit/pkg/iterkit"
	"go.llib.dev/algokit/pkg/logger"
)

type Config struct {
	Precision int  `env:"SEQSTAT_PRECISION" default:"-1"`
	Strict    bool `env:"SEQSTAT_STRICT" default:"false"`
}

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	logger.Default.Out = os.Stderr // used by the library packages
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// run logs to stderr, the summary is the only thing written to stdout.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	ctx = logger.ContextWith(ctx, logger.Field("run_id", uuid.NewV4().String()))
	log := &logger.Logger{Out: stderr, Level: logger.Default.Level}

	var c Config
	if err := env.Load(&c); err != nil {
		log.Error(ctx, "invalid configuration", logger.ErrField(err))
		return exitUsage
	}

	fs := flag.NewFlagSet("seqstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&c.Precision, "precision", c.Precision, "number of decimals in the output, -1 keeps the shortest representation")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "fail on a malformed token")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	values, err := iterkit.CollectErr(convkit.ScanNumbersErr[float64](stdin))
	if err != nil {
		if c.Strict || !errors.Is(err, convkit.ErrMalformedNumber) {
			log.Error(ctx, "failed to read the input", logger.ErrField(err))
			return exitFail
		}
		log.Warn(ctx, "input is summarised up to the first malformed token",
			logger.ErrField(err),
			logger.Field("count", len(values)))
	}

	s, err := summary.Of(ctx, values)
	if errors.Is(err, summary.ErrEmpty) {
		log.Error(ctx, "there are no numbers on the input")
		return exitFail
	}
	if errors.Is(err, summary.ErrNotFinite) {
		log.Error(ctx, "the input can not be summarised in float64", logger.ErrField(err))
		return exitFail
	}
	if err != nil {
		log.Error(ctx, "failed to summarise the input", logger.ErrField(err))
		return exitFail
	}

	if err := json.NewEncoder(stdout).Encode(s.Round(c.Precision)); err != nil {
		log.Error(ctx, "failed to write the summary", logger.ErrField(err))
		return exitFail
	}
	log.Info(ctx, "summary written", logger.Field("count", s.Count))
	return exitOK
}
