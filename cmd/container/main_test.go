// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jithendrahs/concur/internal/config"
	"github.com/jithendrahs/concur/internal/obslog"
)

func TestBuildContainerAllVariants(t *testing.T) {
	variants := []config.Variant{
		config.VariantLockStack,
		config.VariantLockQueue,
		config.VariantTreiberStack,
		config.VariantMSQueue,
		config.VariantLockElimStack,
		config.VariantTreiberElimStack,
		config.VariantFlatCombiningStack,
		config.VariantRingSPSC,
		config.VariantRingMPMC,
	}
	for _, v := range variants {
		cfg := config.Config{Variant: v, RingCapacity: 4}
		c, err := buildContainer(cfg)
		if err != nil {
			t.Fatalf("buildContainer(%s): %v", v, err)
		}
		c.Push(1)
		if got, ok := c.Pop(); !ok || got != 1 {
			t.Fatalf("buildContainer(%s): Push/Pop round trip got (%d, %v)", v, got, ok)
		}
	}
}

func TestBuildContainerUnknownVariant(t *testing.T) {
	if _, err := buildContainer(config.Config{Variant: "bogus"}); err == nil {
		t.Fatalf("buildContainer: expected error for unknown variant")
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("1\n2\n3\n4\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	logger := obslog.New(slog.New(slog.NewTextHandler(os.Stderr, nil)), "test")
	err := run([]string{"-input", in, "-output", out, "-threads", "2", "-variant", "treiber"}, logger)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	logger := obslog.New(slog.New(slog.NewTextHandler(os.Stderr, nil)), "test")
	if err := run([]string{"-variant", "treiber"}, logger); err == nil {
		t.Fatalf("run: expected error for missing -input")
	}
}
