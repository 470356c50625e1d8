// Package verify runs the carry-less multiplication equivalence harness.
package verify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iamNilotpal/gf2/internal/core/domain"
	"github.com/iamNilotpal/gf2/pkg/clmul"
	"github.com/iamNilotpal/gf2/pkg/errors"
	"github.com/iamNilotpal/gf2/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

const (
	DefaultTrials = 1000
	MaxTrials     = 100_000_000
)

// Options configures a Service.
type Options struct {
	domain.VerifyOptions

	// Cases overrides DefaultCases.
	Cases  []Case
	Logger *zap.SugaredLogger
}

// Service runs every case with a shared seeded generator.
type Service struct {
	trials int
	seed   uint64
	cases  []Case
	log    *zap.SugaredLogger
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string
	Passed   bool
	Mismatch *Mismatch
}

// Report summarizes a harness run.
type Report struct {
	Seed       uint64
	Trials     int
	Addressing string
	Hardware   map[string]bool
	Duration   time.Duration
	Cases      []CaseResult
}

// Returns recommended harness settings.
func DefaultOptions() *domain.VerifyOptions {
	return &domain.VerifyOptions{Trials: DefaultTrials}
}

// Validate checks the harness settings.
func Validate(opts *domain.VerifyOptions) error {
	if opts.Trials < 0 || opts.Trials > MaxTrials {
		return errors.NewValidationError(
			"verify.trials", opts.Trials, fmt.Errorf("trials must be between 0 and %d", MaxTrials),
		)
	}
	return nil
}

// New creates a harness. Zero trials means DefaultTrials; a zero seed is
// replaced by one taken from the clock.
func New(opts Options) (*Service, error) {
	if err := Validate(&opts.VerifyOptions); err != nil {
		return nil, err
	}

	s := &Service{
		trials: opts.Trials,
		seed:   opts.Seed,
		cases:  opts.Cases,
		log:    opts.Logger,
	}

	if s.trials == 0 {
		s.trials = DefaultTrials
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	if s.cases == nil {
		s.cases = DefaultCases()
	}
	if s.log == nil {
		s.log = logger.New("verify-service")
	}

	return s, nil
}

// Seed returns the seed the run uses.
func (s *Service) Seed() uint64 {
	return s.seed
}

// Run executes every case in order. It stops early only when ctx is done,
// returning the partial report with the context error.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9E3779B97F4A7C15))

	report := &Report{
		Seed:       s.seed,
		Trials:     s.trials,
		Addressing: clmul.DefaultAddressing().String(),
		Hardware: map[string]bool{
			"x86_pclmulqdq": cpu.X86.HasPCLMULQDQ,
			"arm64_pmull":   cpu.ARM64.HasPMULL,
		},
		Cases: make([]CaseResult, 0, len(s.cases)),
	}

	s.log.Infow("verification started", "seed", s.seed, "trials", s.trials, "cases", len(s.cases))

	for _, c := range s.cases {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}

		m := c.run(rng, s.trials)
		report.Cases = append(report.Cases, CaseResult{Name: c.Name, Passed: m == nil, Mismatch: m})

		if m != nil {
			s.log.Errorw("case failed",
				"case", c.Name, "trial", m.Trial, "l", m.Left, "r", m.Right,
				"naive", m.Reference, "strided", m.Candidate,
			)
		} else {
			s.log.Debugw("case passed", "case", c.Name)
		}
	}

	report.Duration = time.Since(start)
	s.log.Infow("verification finished", "passed", report.Passed(), "duration", report.Duration)
	return report, nil
}

// Passed reports whether every case passed.
func (r *Report) Passed() bool {
	for _, c := range r.Cases {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Fields returns the report as nested maps of strings, numbers and bools.
// The seed is a decimal string so it survives float64 encodings.
func (r *Report) Fields() map[string]any {
	cases := make([]any, 0, len(r.Cases))
	for _, c := range r.Cases {
		entry := map[string]any{"name": c.Name, "passed": c.Passed}
		if m := c.Mismatch; m != nil {
			entry["mismatch"] = map[string]any{
				"trial":   m.Trial,
				"l":       m.Left,
				"r":       m.Right,
				"naive":   m.Reference,
				"strided": m.Candidate,
			}
		}
		cases = append(cases, entry)
	}

	hw := make(map[string]any, len(r.Hardware))
	for k, v := range r.Hardware {
		hw[k] = v
	}

	return map[string]any{
		"seed":       fmt.Sprint(r.Seed),
		"trials":     r.Trials,
		"addressing": r.Addressing,
		"hardware":   hw,
		"duration":   r.Duration.String(),
		"passed":     r.Passed(),
		"cases":      cases,
	}
}
