// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config_test

import (
	"testing"

	"github.com/jithendrahs/concur/internal/config"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse([]string{"-input", "in.txt"})
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if cfg.OutputFile != "stack_queue_output.txt" {
		t.Fatalf("OutputFile: got %q, want default", cfg.OutputFile)
	}
	if cfg.Threads != 4 {
		t.Fatalf("Threads: got %d, want 4", cfg.Threads)
	}
	if cfg.Variant != config.VariantLockStack {
		t.Fatalf("Variant: got %q, want %q", cfg.Variant, config.VariantLockStack)
	}
}

func TestParseMissingInput(t *testing.T) {
	if _, err := config.Parse(nil); err == nil {
		t.Fatalf("Parse: expected error for missing -input")
	}
}

func TestParseUnknownVariant(t *testing.T) {
	_, err := config.Parse([]string{"-input", "in.txt", "-variant", "bogus"})
	if err == nil {
		t.Fatalf("Parse: expected error for unknown variant")
	}
}

func TestParseNonPositiveThreads(t *testing.T) {
	_, err := config.Parse([]string{"-input", "in.txt", "-threads", "0"})
	if err == nil {
		t.Fatalf("Parse: expected error for zero threads")
	}
}

func TestParseRingCapacityValidation(t *testing.T) {
	_, err := config.Parse([]string{"-input", "in.txt", "-variant", "ring_spsc", "-ring-capacity", "1"})
	if err == nil {
		t.Fatalf("Parse: expected error for ring-capacity below 2")
	}
}

func TestParseShorthandFlags(t *testing.T) {
	cfg, err := config.Parse([]string{"-i", "in.txt", "-o", "out.txt", "-t", "8"})
	if err != nil {
		t.Fatalf("Parse: unexpected error %v", err)
	}
	if cfg.InputFile != "in.txt" || cfg.OutputFile != "out.txt" || cfg.Threads != 8 {
		t.Fatalf("Parse: got %+v", cfg)
	}
}
