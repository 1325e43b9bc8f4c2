// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config resolves cmd/container's command-line flags into a
// validated Config, in the same flag.FlagSet-plus-manual-validation
// style skipper's own standalone command-line tools use.
package config

import (
	"flag"
	"fmt"
)

// Variant names the container implementation cmd/container should run.
type Variant string

const (
	VariantLockStack          Variant = "sgl"
	VariantLockQueue          Variant = "sgl_queue"
	VariantTreiberStack       Variant = "treiber"
	VariantMSQueue            Variant = "mns"
	VariantLockElimStack      Variant = "sgl_elim"
	VariantTreiberElimStack   Variant = "treiber_elim"
	VariantFlatCombiningStack Variant = "stack_flat"
	VariantRingSPSC           Variant = "ring_spsc"
	VariantRingMPMC           Variant = "ring_mpmc"
)

var allVariants = []Variant{
	VariantLockStack, VariantLockQueue, VariantTreiberStack, VariantMSQueue,
	VariantLockElimStack, VariantTreiberElimStack, VariantFlatCombiningStack,
	VariantRingSPSC, VariantRingMPMC,
}

// defaultOutputFile matches the original command-line tool's default
// output path.
const defaultOutputFile = "stack_queue_output.txt"

// defaultThreads is the worker count used when -threads is not given.
const defaultThreads = 4

// defaultRingCapacity bounds ring_spsc/ring_mpmc when -ring-capacity
// is not given.
const defaultRingCapacity = 1024

// Config is the fully validated set of parameters for one container run.
type Config struct {
	InputFile    string
	OutputFile   string
	Threads      int
	Variant      Variant
	RingCapacity int
}

// Parse builds a Config from args (normally os.Args[1:]), returning a
// descriptive error for any invalid flag combination instead of
// exiting the process.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("container", flag.ContinueOnError)

	var cfg Config
	var variant string
	fs.StringVar(&cfg.InputFile, "input", "", "path to a file of newline-separated int64 values to load")
	fs.StringVar(&cfg.InputFile, "i", "", "shorthand for -input")
	fs.StringVar(&cfg.OutputFile, "output", defaultOutputFile, "path to write the values popped during the run to")
	fs.StringVar(&cfg.OutputFile, "o", defaultOutputFile, "shorthand for -output")
	fs.IntVar(&cfg.Threads, "threads", defaultThreads, "number of worker goroutines driving the container")
	fs.IntVar(&cfg.Threads, "t", defaultThreads, "shorthand for -threads")
	fs.StringVar(&variant, "variant", string(VariantLockStack), variantUsage())
	fs.IntVar(&cfg.RingCapacity, "ring-capacity", defaultRingCapacity, "capacity for ring_spsc/ring_mpmc variants")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Variant = Variant(variant)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("config: -input is required")
	}
	if c.Threads <= 0 {
		return fmt.Errorf("config: -threads must be positive, got %d", c.Threads)
	}
	if !c.Variant.valid() {
		return fmt.Errorf("config: unknown -variant %q (%s)", c.Variant, variantUsage())
	}
	if c.isRingVariant() && c.RingCapacity < 2 {
		return fmt.Errorf("config: -ring-capacity must be >= 2 for variant %q, got %d", c.Variant, c.RingCapacity)
	}
	return nil
}

func (c Config) isRingVariant() bool {
	return c.Variant == VariantRingSPSC || c.Variant == VariantRingMPMC
}

func (v Variant) valid() bool {
	for _, candidate := range allVariants {
		if v == candidate {
			return true
		}
	}
	return false
}

func variantUsage() string {
	s := "container variant to run, one of:"
	for _, v := range allVariants {
		s += " " + string(v)
	}
	return s
}
