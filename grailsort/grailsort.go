// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grailsort implements stable block merge sorting of slices.
//
// The sort runs in O(N*log(N)) worst-case time using O(1) auxiliary
// memory. It extracts a set of distinct elements to the front of the
// slice and uses them both as a scratch buffer for swap-based merging
// and as movable tags that record which run a block of elements came
// from, which is what keeps the physical block permutation stable.
//
// The buffered variants trade a little memory for speed: SortWithBuffer
// keeps a fixed 512-element scratch slice on the stack, and
// SortWithDynBuffer allocates roughly sqrt(N) elements so the hottest
// merges can move elements instead of swapping them.
//
// RecStableSort is an independent classic in-place merge sort with
// O(N*log(N)^2) worst-case time, provided as a simpler alternative.
package grailsort

import "golang.org/x/exp/constraints"

// staticBufferLen is the scratch capacity of the fixed-buffer variants.
const staticBufferLen = 512

// cmpFunc is a three-way comparator: negative if a orders before b,
// zero if they are tied, positive if a orders after b. It must describe
// a total order and be free of side effects for the duration of a sort.
type cmpFunc[E any] func(a, b E) int

func compare[E constraints.Ordered](a, b E) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Sort sorts a slice of any ordered type in ascending order.
// Elements that compare equal keep their original order.
func Sort[E constraints.Ordered](x []E) {
	SortFunc(x, compare[E])
}

// SortFunc sorts the slice x as determined by the three-way comparator
// cmp. Elements for which cmp returns zero keep their original order.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	cmpFunc[E](cmp).commonSort(x, nil)
}

// SortWithBuffer is like Sort but uses a fixed 512-element scratch
// buffer, which makes the early merge passes move elements instead of
// swapping them.
func SortWithBuffer[E constraints.Ordered](x []E) {
	SortWithBufferFunc(x, compare[E])
}

// SortWithBufferFunc is like SortFunc with a fixed 512-element scratch
// buffer.
func SortWithBufferFunc[E any](x []E, cmp func(a, b E) int) {
	var buf [staticBufferLen]E
	cmpFunc[E](cmp).commonSort(x, buf[:])
}

// SortWithDynBuffer is like Sort but allocates a scratch buffer of the
// smallest power of two whose square is at least len(x), released
// before returning.
func SortWithDynBuffer[E constraints.Ordered](x []E) {
	SortWithDynBufferFunc(x, compare[E])
}

// SortWithDynBufferFunc is like SortFunc with a dynamically sized
// scratch buffer of about sqrt(len(x)) elements.
func SortWithDynBufferFunc[E any](x []E, cmp func(a, b E) int) {
	bufLen := 1
	for bufLen*bufLen < len(x) {
		bufLen *= 2
	}
	cmpFunc[E](cmp).commonSort(x, make([]E, bufLen))
}

// RecStableSort sorts a slice of any ordered type in ascending order
// using a classic in-place recursive merge sort. Elements that compare
// equal keep their original order.
func RecStableSort[E constraints.Ordered](x []E) {
	RecStableSortFunc(x, compare[E])
}

// RecStableSortFunc sorts the slice x stably as determined by the
// three-way comparator cmp, using a classic in-place recursive merge
// sort. It needs no buffer and runs in O(N*log(N)^2) worst-case time.
func RecStableSortFunc[E any](x []E, cmp func(a, b E) int) {
	cmpFunc[E](cmp).recSort(x)
}
