package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iamNilotpal/gf2/config"
	adapter "github.com/iamNilotpal/gf2/internal/adapters/checksum"
	"github.com/iamNilotpal/gf2/internal/adapters/compression"
	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/internal/core/services/checksum"
	"github.com/iamNilotpal/gf2/internal/core/services/verify"
	"github.com/iamNilotpal/gf2/internal/serialize"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/iamNilotpal/gf2/pkg/logger"
	"github.com/iamNilotpal/gf2/pkg/system"
	"go.uber.org/zap"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	serviceName  = "bitsum"
	usageSummary = `usage: bitsum [-config file] [-log-level level] <command> [flags]

commands:
  sum [-algo name] [-zstd] [-expect hex] FILE...
  verify [-trials n] [-seed s] [-json]
  algorithms
`
)

type app struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usageSummary) }
	configPath := global.String("config", "", "YAML configuration file")
	logLevel := global.String("log-level", "", "minimum log level (debug, info, warn, error)")

	if err := global.Parse(args); err != nil {
		return exitUsage
	}
	if global.NArg() == 0 {
		global.Usage()
		return exitUsage
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "bitsum: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "bitsum: invalid log level %q\n", cfg.LogLevel)
		return exitUsage
	}

	log := logger.NewWithLevel(serviceName, level)
	defer log.Sync()

	a := &app{cfg: cfg, log: log, stdout: stdout, stderr: stderr}

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "sum":
		return a.sum(ctx, rest)
	case "verify":
		return a.verify(ctx, rest)
	case "algorithms":
		return a.algorithms()
	default:
		fmt.Fprintf(stderr, "bitsum: unknown command %q\n", command)
		global.Usage()
		return exitUsage
	}
}

func (a *app) sum(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("sum", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	algo := fs.String("algo", a.cfg.Checksum.Algorithm, "checksum algorithm")
	zstd := fs.Bool("zstd", a.cfg.Checksum.Decompress, "decompress zstd input before checksumming")
	expect := fs.String("expect", "", "expected checksum in hex; requires a single FILE")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var expected uint64
	if *expect != "" {
		if len(paths) != 1 {
			fmt.Fprintln(a.stderr, "bitsum: -expect needs exactly one FILE")
			return exitUsage
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(*expect), "0x"), 16, 64)
		if err != nil {
			fmt.Fprintf(a.stderr, "bitsum: invalid -expect value %q\n", *expect)
			return exitUsage
		}
		expected = v
	}

	opts := a.cfg.ChecksumOptions()
	opts.Algorithm = domain.ChecksumAlgorithm(*algo)
	opts.Decompress = *zstd

	if err := adapter.Validate(opts); err != nil {
		a.reportError("invalid checksum options", err)
		return exitUsage
	}

	port, err := adapter.New(opts)
	if err != nil {
		a.reportError("create checksum", err)
		return exitUsage
	}

	svcCfg := checksum.Config{Checksum: port, BufferSize: opts.BufferSize, Logger: a.log}
	if opts.Decompress {
		z, err := compression.NewZstdCompression(compression.DefaultOptions())
		if err != nil {
			a.reportError("create decompressor", err)
			return exitFailure
		}
		svcCfg.Compression = z
	}

	svc, err := checksum.NewService(svcCfg)
	if err != nil {
		a.reportError("create checksum service", err)
		return exitUsage
	}

	err = system.RunWithContext(ctx, func(ctx context.Context) error {
		if *expect != "" {
			res, err := svc.Check(ctx, paths[0], expected)
			if res != nil {
				a.printResult(svc, res)
			}
			return err
		}

		results, err := svc.SumFiles(ctx, paths)
		for _, res := range results {
			a.printResult(svc, res)
		}
		return err
	})
	if err != nil {
		a.reportError("sum", err)
		return exitFailure
	}

	return exitOK
}

func (a *app) printResult(svc *checksum.Service, res *checksum.Result) {
	fmt.Fprintf(a.stdout, "%0*x  %s\n", svc.Width(), res.Sum, res.Path)
}

func (a *app) verify(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	trials := fs.Int("trials", a.cfg.Verify.Trials, "random operand pairs per case")
	seed := fs.Uint64("seed", a.cfg.Verify.Seed, "generator seed; 0 picks one from the clock")
	asJSON := fs.Bool("json", false, "print the report as JSON on stdout")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	svc, err := verify.New(verify.Options{
		VerifyOptions: domain.VerifyOptions{Trials: *trials, Seed: *seed},
		Logger:        a.log,
	})
	if err != nil {
		a.reportError("create verifier", err)
		return exitUsage
	}

	var report *verify.Report
	err = system.RunWithContext(ctx, func(ctx context.Context) error {
		var runErr error
		report, runErr = svc.Run(ctx)
		return runErr
	})
	if err != nil {
		a.reportError("verify", err)
		return exitFailure
	}

	if *asJSON {
		data, err := serialize.MarshalIndentJSON(report.Fields())
		if err != nil {
			a.reportError("encode report", err)
			return exitFailure
		}
		fmt.Fprintln(a.stdout, string(data))
	} else {
		for _, c := range report.Cases {
			if c.Passed {
				fmt.Fprintf(a.stderr, "PASSED: %s\n", c.Name)
				continue
			}
			m := c.Mismatch
			fmt.Fprintf(a.stdout, "%s[%d/%d] l=%s r=%s result_strided=%s result_naive=%s\n",
				c.Name, m.Trial, report.Trials, m.Left, m.Right, m.Candidate, m.Reference)
			fmt.Fprintf(a.stderr, "FAILED: %s\n", c.Name)
		}
	}

	if !report.Passed() {
		return exitFailure
	}
	return exitOK
}

func (a *app) algorithms() int {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tCHECK\tSOURCE")
	for _, info := range adapter.Algorithms(a.cfg.Algorithms) {
		source := "config"
		if info.Builtin {
			source = "builtin"
		}
		fmt.Fprintf(w, "%s\t%d\t%0*x\t%s\n", info.Name, info.Width, info.Width/4, info.Check, source)
	}
	if err := w.Flush(); err != nil {
		return exitFailure
	}
	return exitOK
}

func (a *app) reportError(msg string, err error) {
	if ve := errors.AsValidationError(err); ve != nil {
		a.log.Errorw(msg, "field", ve.Field, "value", ve.Value, "error", ve.Err)
	} else {
		a.log.Errorw(msg, "error", err)
	}
	fmt.Fprintf(a.stderr, "bitsum: %v\n", err)
}
