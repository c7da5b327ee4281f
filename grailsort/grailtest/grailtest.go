// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grailtest supplies deterministic inputs and result checking
// for the grailsort tests and the grailbench command.
//
// The generator is a linear congruential sequence with a
// deliberately skewed key draw, and it numbers the elements of each
// key class in Val, which makes stability violations visible to a
// plain scan.
package grailtest

// Pair is a sortable element whose Key decides the order and whose Val
// records the element's arrival rank within its key class.
type Pair struct {
	Key, Val int
}

// ComparePair orders pairs by Key alone, so equal keys expose the
// stability of a sort through Val.
func ComparePair(a, b Pair) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	}
	return 0
}

// A Source is a deterministic random sequence. The zero value is not
// useful; use NewSource.
type Source struct {
	seed int32
}

// DefaultSeed is the seed the tests and grailbench run with.
const DefaultSeed = 100000001

func NewSource(seed int32) *Source {
	return &Source{seed: seed}
}

// Intn returns a pseudo-random number in [0, k), drawn by scaling the
// 31-bit state. The weak multiplier is deliberate: the sequence is
// cheap, portable, and uneven enough to exercise duplicate-heavy runs.
func (s *Source) Intn(k int) int {
	s.seed = s.seed*1234565 + 1
	return int((int64(s.seed&0x7fffffff) * int64(k)) >> 31)
}

// Pairs generates length elements with keys in [0, keyCount) and Val
// numbering each key class 0, 1, 2, ... in order of appearance. With
// keyCount zero the keys are drawn from [0, 1e9) and Val is left zero.
func Pairs(s *Source, length, keyCount int) []Pair {
	arr := make([]Pair, length)
	if keyCount == 0 {
		for i := range arr {
			arr[i].Key = s.Intn(1000000000)
		}
		return arr
	}
	counters := make([]int, keyCount)
	for i := range arr {
		key := s.Intn(keyCount)
		arr[i] = Pair{Key: key, Val: counters[key]}
		counters[key]++
	}
	return arr
}

// IsSorted reports whether arr is non-decreasing under cmp.
func IsSorted[E any](arr []E, cmp func(a, b E) int) bool {
	for i := 1; i < len(arr); i++ {
		if cmp(arr[i-1], arr[i]) > 0 {
			return false
		}
	}
	return true
}

// IsStable reports whether arr is sorted by Key with Val non-decreasing
// inside every key class, the condition a stable sort of a Pairs input
// must leave behind.
func IsStable(arr []Pair) bool {
	for i := 1; i < len(arr); i++ {
		d := ComparePair(arr[i-1], arr[i])
		if d > 0 {
			return false
		}
		if d == 0 && arr[i-1].Val > arr[i].Val {
			return false
		}
	}
	return true
}

// A Counter wraps a comparator and counts its invocations.
type Counter[E any] struct {
	N   int64
	Cmp func(a, b E) int
}

func (c *Counter[E]) Compare(a, b E) int {
	c.N++
	return c.Cmp(a, b)
}
