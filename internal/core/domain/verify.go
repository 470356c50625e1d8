// Package domain defines the option types shared by adapters and services.
package domain

// VerifyOptions configures the carry-less multiplication equivalence check.
type VerifyOptions struct {
	// Trials is the number of random operand pairs per case.
	// Default: 1000
	Trials int `yaml:"trials"`

	// Seed seeds the operand generator. Zero picks a seed from the clock;
	// the seed used is always reported.
	Seed uint64 `yaml:"seed"`
}
