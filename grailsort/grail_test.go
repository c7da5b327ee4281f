// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

import (
	"math/rand"
	"testing"
)

var intCmp = cmpFunc[int](compare[int])

// refRotate is the obviously correct rotate used to check the bridged one.
func refRotate(s []int, l1, l2 int) []int {
	out := make([]int, 0, l1+l2)
	out = append(out, s[l1:l1+l2]...)
	out = append(out, s[:l1]...)
	return append(out, s[l1+l2:]...)
}

func TestRotate(t *testing.T) {
	rand.Seed(1)
	for _, sizes := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {1, 7}, {7, 1}, {3, 5}, {8, 8}, {13, 2}, {2, 13}, {100, 1}, {1, 100}, {64, 33}} {
		l1, l2 := sizes[0], sizes[1]
		arr := make([]int, l1+l2+3)
		for i := range arr {
			arr[i] = rand.Intn(1000)
		}
		want := refRotate(arr, l1, l2)
		rotate(arr, 0, l1, l2)
		for i := range arr {
			if arr[i] != want[i] {
				t.Fatalf("rotate(%d, %d): got %v want %v", l1, l2, arr, want)
			}
		}
	}
}

func TestShift(t *testing.T) {
	arr := []int{10, 20, 30, 40, 50}
	shift(arr, 3, 3) // hold arr[4], slide arr[1:4] right, drop held at 1
	want := []int{10, 50, 20, 30, 40}
	for i := range arr {
		if arr[i] != want[i] {
			t.Fatalf("shift: got %v want %v", arr, want)
		}
	}
}

func TestBinSearch(t *testing.T) {
	arr := []int{1, 2, 2, 2, 5, 7, 7, 9}
	for key := 0; key <= 10; key++ {
		l := intCmp.binSearchLeft(arr, 0, len(arr), key)
		r := intCmp.binSearchRight(arr, 0, len(arr), key)
		for i := 0; i < len(arr); i++ {
			if i < l && arr[i] >= key {
				t.Errorf("left(%d) = %d: arr[%d] = %d not below key", key, l, i, arr[i])
			}
			if i >= l && arr[i] < key {
				t.Errorf("left(%d) = %d: arr[%d] = %d below key", key, l, i, arr[i])
			}
			if i < r && arr[i] > key {
				t.Errorf("right(%d) = %d: arr[%d] = %d above key", key, r, i, arr[i])
			}
			if i >= r && arr[i] <= key {
				t.Errorf("right(%d) = %d: arr[%d] = %d not above key", key, r, i, arr[i])
			}
		}
	}
}

func TestInsertSort(t *testing.T) {
	rand.Seed(2)
	for n := 0; n <= 40; n++ {
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rand.Intn(8)
		}
		intCmp.insertSort(arr)
		for i := 1; i < n; i++ {
			if arr[i-1] > arr[i] {
				t.Fatalf("n=%d: not sorted: %v", n, arr)
			}
		}
	}
}

func TestFindKeys(t *testing.T) {
	arr := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	counts := map[int]int{}
	for _, v := range arr {
		counts[v]++
	}

	h := intCmp.findKeys(arr, len(arr))
	if h != 7 {
		t.Fatalf("findKeys found %d distinct keys, want 7", h)
	}
	prefix := arr[:h]
	for i := 1; i < h; i++ {
		if prefix[i-1] >= prefix[i] {
			t.Fatalf("key prefix not sorted distinct: %v", prefix)
		}
	}
	for _, v := range arr {
		counts[v]--
	}
	for v, n := range counts {
		if n != 0 {
			t.Fatalf("findKeys changed the multiset: %d off by %d", v, n)
		}
	}
}

func TestFindKeysCapped(t *testing.T) {
	arr := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	h := intCmp.findKeys(arr, 4)
	if h != 4 {
		t.Fatalf("findKeys found %d keys, want the cap 4", h)
	}
	prefix := arr[:4]
	for i := 1; i < 4; i++ {
		if prefix[i-1] >= prefix[i] {
			t.Fatalf("key prefix not sorted distinct: %v", prefix)
		}
	}
}

type tagged struct {
	key, tag int
}

var taggedCmp = cmpFunc[tagged](func(a, b tagged) int {
	return compare(a.key, b.key)
})

// refMerge is a stable out-of-place merge of two sorted tagged runs.
func refMerge(a, b []tagged) []tagged {
	out := make([]tagged, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].key < a[i].key {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func makeRuns(r *rand.Rand, l1, l2, keys int) []tagged {
	arr := make([]tagged, l1+l2)
	for i := range arr {
		arr[i] = tagged{key: r.Intn(keys), tag: i}
	}
	taggedCmp.insertSort(arr[:l1])
	taggedCmp.insertSort(arr[l1:])
	// Insertion sort is stable, so tags inside each run stay ordered
	// per key; re-tag to make cross-run stability checkable.
	for i := range arr {
		arr[i].tag = i
	}
	return arr
}

func TestMergeWithoutBuffer(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, sizes := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {2, 9}, {9, 2}, {16, 16}, {5, 31}, {31, 5}} {
		l1, l2 := sizes[0], sizes[1]
		arr := makeRuns(r, l1, l2, 5)
		want := refMerge(arr[:l1:l1], arr[l1:])
		taggedCmp.mergeWithoutBuffer(arr, 0, l1, l2)
		for i := range arr {
			if arr[i] != want[i] {
				t.Fatalf("merge(%d, %d): got %v want %v", l1, l2, arr, want)
			}
		}
	}
}

func TestMergeLeftBufferDiscipline(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	const bufLen = 8
	for _, sizes := range [][2]int{{8, 8}, {8, 3}, {3, 8}, {8, 1}} {
		l1, l2 := sizes[0], sizes[1]
		arr := make([]tagged, bufLen+l1+l2)
		for i := 0; i < bufLen; i++ {
			arr[i] = tagged{key: -100 - i} // buffer sentinels
		}
		payload := makeRuns(r, l1, l2, 4)
		copy(arr[bufLen:], payload)
		want := refMerge(payload[:l1:l1], payload[l1:])

		taggedCmp.mergeLeft(arr, bufLen, l1, l2, -bufLen)

		// Payload lands in final position, displaced by the buffer
		// length; the buffer elements end up after it, permuted.
		for i := range want {
			if arr[i] != want[i] {
				t.Fatalf("mergeLeft(%d, %d): payload got %v want %v", l1, l2, arr[:len(want)], want)
			}
		}
		seen := map[int]bool{}
		for _, e := range arr[l1+l2:] {
			if e.key > -100 || e.key < -100-bufLen+1 || seen[e.key] {
				t.Fatalf("mergeLeft(%d, %d): buffer not a permutation: %v", l1, l2, arr[l1+l2:])
			}
			seen[e.key] = true
		}
	}
}

func TestMergeRightBufferDiscipline(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	const bufLen = 8
	l1, l2 := 8, 6
	arr := make([]tagged, l1+l2+bufLen)
	payload := makeRuns(r, l1, l2, 4)
	copy(arr, payload)
	for i := 0; i < bufLen; i++ {
		arr[l1+l2+i] = tagged{key: -100 - i}
	}
	want := refMerge(payload[:l1:l1], payload[l1:])

	taggedCmp.mergeRight(arr, 0, l1, l2, bufLen)

	for i := range want {
		if arr[bufLen+i] != want[i] {
			t.Fatalf("mergeRight: payload got %v want %v", arr[bufLen:], want)
		}
	}
	seen := map[int]bool{}
	for _, e := range arr[:bufLen] {
		if e.key > -100 || seen[e.key] {
			t.Fatalf("mergeRight: buffer not a permutation: %v", arr[:bufLen])
		}
		seen[e.key] = true
	}
}

func TestLazyStableSort(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for _, n := range []int{0, 1, 2, 3, 17, 64, 100} {
		arr := make([]tagged, n)
		for i := range arr {
			arr[i] = tagged{key: r.Intn(3), tag: i}
		}
		taggedCmp.lazyStableSort(arr)
		for i := 1; i < n; i++ {
			if arr[i-1].key > arr[i].key {
				t.Fatalf("n=%d: not sorted at %d: %v", n, i, arr)
			}
			if arr[i-1].key == arr[i].key && arr[i-1].tag > arr[i].tag {
				t.Fatalf("n=%d: not stable at %d: %v", n, i, arr)
			}
		}
	}
}

func TestBuildBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, cfg := range []struct{ length, buildLen, extLen int }{
		{40, 4, 0},
		{41, 4, 0},
		{96, 8, 0},
		{96, 8, 8},
		{97, 8, 4},
		{33, 4, 512},
	} {
		arr := make([]tagged, cfg.buildLen+cfg.length)
		for i := 0; i < cfg.buildLen; i++ {
			arr[i] = tagged{key: -100 - i}
		}
		for i := cfg.buildLen; i < len(arr); i++ {
			arr[i] = tagged{key: r.Intn(7), tag: i}
		}
		var ext []tagged
		if cfg.extLen > 0 {
			ext = make([]tagged, cfg.extLen)
		}

		taggedCmp.buildBlocks(arr, cfg.buildLen, cfg.length, cfg.buildLen, ext)

		// Buffer is parked at the front again, contents permuted.
		seen := map[int]bool{}
		for _, e := range arr[:cfg.buildLen] {
			if e.key > -100 || seen[e.key] {
				t.Fatalf("%+v: buffer not a permutation: %v", cfg, arr[:cfg.buildLen])
			}
			seen[e.key] = true
		}
		// Runs of 2*buildLen are each sorted and stable.
		for start := cfg.buildLen; start < len(arr); start += 2 * cfg.buildLen {
			end := start + 2*cfg.buildLen
			if end > len(arr) {
				end = len(arr)
			}
			run := arr[start:end]
			for i := 1; i < len(run); i++ {
				if run[i-1].key > run[i].key ||
					(run[i-1].key == run[i].key && run[i-1].tag > run[i].tag) {
					t.Fatalf("%+v: run at %d not stably sorted: %v", cfg, start, run)
				}
			}
		}
	}
}
