// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench is the worker harness cmd/container drives: it loads
// an input file, spawns a configurable number of goroutines that each
// insert-then-remove against a shared container, and writes the
// removed values back out.
package bench

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"code.hybscloud.com/atomix"
)

// slack is extra room left at the end of the output slice, carried
// over from the original harness's literal `output_data.resize(input_data.size() + 10)`.
const slack = 10

// Container is the operation pair bench.Run drives a variant through.
// Queue variants are adapted to this shape by cmd/container (Push maps
// to Enqueue, Pop to Dequeue) so the harness stays oblivious to LIFO
// vs FIFO ordering.
type Container interface {
	Push(v int64)
	Pop() (int64, bool)
}

// LoadInput reads newline-separated decimal int64 values from path.
// Blank lines are skipped.
func LoadInput(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bench: load input: %w", err)
	}
	defer f.Close()

	var values []int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bench: load input: parse %q: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bench: load input: %w", err)
	}
	return values, nil
}

// WriteOutput writes one decimal integer per line to path. The slack
// region bench.Run leaves unwritten serializes as literal zero lines,
// preserving the original harness's own "see the abnormalities of
// stack" behavior rather than trimming it away.
func WriteOutput(path string, output []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: write output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range output {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("bench: write output: %w", err)
		}
	}
	return w.Flush()
}

// Run spawns threads worker goroutines against container. Each worker
// claims the next input index from a shared counter, pushes that
// value if one remains, then attempts exactly one pop; a successful
// pop is recorded at the next slot of a second shared counter. A
// worker stops once it has seen the input exhausted and its own pop
// attempt comes back empty — so stragglers keep draining the
// container for as long as there is anything left to drain.
func Run(ctx context.Context, container Container, input []int64, threads int) ([]int64, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("bench: run: threads must be positive, got %d", threads)
	}

	output := make([]int64, len(input)+slack)
	var pushIdx, popIdx atomix.Uint64

	var wg sync.WaitGroup
	wg.Add(threads)
	for t := 0; t < threads; t++ {
		go func() {
			defer wg.Done()
			runWorker(ctx, container, input, output, &pushIdx, &popIdx)
		}()
	}
	wg.Wait()

	return output, nil
}

func runWorker(ctx context.Context, container Container, input, output []int64, pushIdx, popIdx *atomix.Uint64) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		i := pushIdx.AddAcqRel(1) - 1
		pushed := i < uint64(len(input))
		if pushed {
			container.Push(input[i])
		}

		v, ok := container.Pop()
		if ok {
			j := popIdx.AddAcqRel(1) - 1
			if j < uint64(len(output)) {
				output[j] = v
			}
		}

		if !pushed && !ok {
			return
		}
	}
}
