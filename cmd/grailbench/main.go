// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The grailbench command exercises the grailsort variants on
// deterministic skewed inputs and reports comparison counts, wall
// time, and a stability verdict for each round.
//
// Usage: grailbench [-n length] [-keys count] [-variant name] [-rounds n] [-seed s]
//
// The variant is one of grail, buffer, dynbuffer, rec, or stdlib; the
// stdlib variant runs sort.SliceStable for comparison. A keys count of
// zero generates near-distinct keys instead of heavy duplication.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/Mrrl/GrailSort/grailsort"
	"github.com/Mrrl/GrailSort/grailsort/grailtest"
	"go.uber.org/zap"
)

var (
	length  = flag.Int("n", 1_000_000, "number of elements to sort")
	keys    = flag.Int("keys", 1023, "number of distinct keys (0 for near-distinct input)")
	variant = flag.String("variant", "grail", "sort to run: grail, buffer, dynbuffer, rec, stdlib")
	rounds  = flag.Int("rounds", 1, "number of rounds; the seed advances between rounds")
	seed    = flag.Int("seed", grailtest.DefaultSeed, "generator seed for the first round")
)

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	src := grailtest.NewSource(int32(*seed))
	for round := 0; round < *rounds; round++ {
		if err := run(logger, src, round); err != nil {
			logger.Fatal("round failed", zap.Int("round", round), zap.Error(err))
		}
	}
}

func run(logger *zap.Logger, src *grailtest.Source, round int) error {
	arr := grailtest.Pairs(src, *length, *keys)
	counter := grailtest.Counter[grailtest.Pair]{Cmp: grailtest.ComparePair}

	start := time.Now()
	switch *variant {
	case "grail":
		grailsort.SortFunc(arr, counter.Compare)
	case "buffer":
		grailsort.SortWithBufferFunc(arr, counter.Compare)
	case "dynbuffer":
		grailsort.SortWithDynBufferFunc(arr, counter.Compare)
	case "rec":
		grailsort.RecStableSortFunc(arr, counter.Compare)
	case "stdlib":
		sort.SliceStable(arr, func(i, j int) bool {
			return counter.Compare(arr[i], arr[j]) < 0
		})
	default:
		return fmt.Errorf("unknown variant %q", *variant)
	}
	elapsed := time.Since(start)

	stable := grailtest.IsStable(arr)
	logger.Info("sort finished",
		zap.Int("round", round),
		zap.String("variant", *variant),
		zap.Int("n", *length),
		zap.Int("keys", *keys),
		zap.Int64("comparisons", counter.N),
		zap.Duration("elapsed", elapsed),
		zap.Bool("stable", stable),
	)
	if !stable {
		return fmt.Errorf("%s produced an unstable or unsorted result", *variant)
	}
	return nil
}
