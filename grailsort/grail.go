// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

// The engine below works on arr with an explicit base index rather than
// on subslices: the scratch buffer lives in the region immediately
// before base, so offsets relative to base may be negative.

func multiSwap[E any](arr []E, a, b, n int) {
	for ; n != 0; n-- {
		arr[a], arr[b] = arr[b], arr[a]
		a++
		b++
	}
}

// shift holds arr[pos+1] aside, moves the writes elements ending at pos
// one slot to the right, and writes the held value into the gap.
func shift[E any](arr []E, pos, writes int) {
	tmp := arr[pos+1]
	for ; writes != 0; writes-- {
		arr[pos+1] = arr[pos]
		pos--
	}
	arr[pos+1] = tmp
}

// rotate exchanges arr[base:base+lenA] and arr[base+lenA:base+lenA+lenB]
// by bridging swaps of the shorter side, using shift when a single
// element crosses the boundary.
func rotate[E any](arr []E, base, lenA, lenB int) {
	for lenA != 0 && lenB != 0 {
		if lenA <= lenB {
			if lenA == 1 {
				shift(arr, base, 1)
			} else {
				multiSwap(arr, base, base+lenA, lenA)
			}
			base += lenA
			lenB -= lenA
		} else {
			if lenB == 1 {
				shift(arr, base+lenA-1, 1)
			} else {
				multiSwap(arr, base+lenA-lenB, base+lenA, lenB)
			}
			lenA -= lenB
		}
	}
}

func (c cmpFunc[E]) insertSort(arr []E) {
	for i := 1; i < len(arr); i++ {
		pos := i - 1
		tmp := arr[i]
		for pos >= 0 && c(tmp, arr[pos]) < 0 {
			arr[pos+1] = arr[pos]
			pos--
		}
		arr[pos+1] = tmp
	}
}

// binSearchLeft returns the greatest r in [0, length] such that every
// element of arr[base:base+r] compares strictly less than key.
func (c cmpFunc[E]) binSearchLeft(arr []E, base, length int, key E) int {
	a, b := -1, length
	for a < b-1 {
		m := a + (b-a)>>1
		if c(arr[base+m], key) >= 0 {
			b = m
		} else {
			a = m
		}
	}
	return b
}

// binSearchRight is like binSearchLeft with less-or-equal in place of
// strictly less.
func (c cmpFunc[E]) binSearchRight(arr []E, base, length int, key E) int {
	a, b := -1, length
	for a < b-1 {
		m := a + (b-a)>>1
		if c(arr[base+m], key) > 0 {
			b = m
		} else {
			a = m
		}
	}
	return b
}

// findKeys gathers up to nkeys pairwise-distinct elements at the front
// of arr, sorted, and reports how many it found. The found prefix grows
// in place and is rotated along the scan so each new key travels O(1)
// rotations. Cost: 2*len + nkeys^2/2.
func (c cmpFunc[E]) findKeys(arr []E, nkeys int) int {
	h, h0 := 1, 0 // the first key is always at 0
	for u := 1; u < len(arr) && h < nkeys; u++ {
		r := c.binSearchLeft(arr, h0, h, arr[u])
		if r == h || c(arr[u], arr[h0+r]) != 0 {
			rotate(arr, h0, h, u-(h0+h))
			h0 = u - h
			rotate(arr, h0+r, h-r, 1)
			h++
		}
	}
	rotate(arr, 0, h0, h)
	return h
}

// mergeWithoutBuffer merges the adjacent sorted runs arr[base:base+len1]
// and arr[base+len1:base+len1+len2] using rotations only.
// Cost: min(len1,len2)^2 + max(len1,len2).
func (c cmpFunc[E]) mergeWithoutBuffer(arr []E, base, len1, len2 int) {
	if len1 < len2 {
		for len1 != 0 {
			loc := c.binSearchLeft(arr, base+len1, len2, arr[base])
			if loc != 0 {
				rotate(arr, base, len1, loc)
				base += loc
				len2 -= loc
			}
			if len2 == 0 {
				break
			}
			for {
				base++
				len1--
				if len1 == 0 || c(arr[base], arr[base+len1]) > 0 {
					break
				}
			}
		}
	} else {
		for len2 != 0 {
			loc := c.binSearchRight(arr, base, len1, arr[base+len1+len2-1])
			if loc != len1 {
				rotate(arr, base+loc, len1-loc, len2)
				len1 = loc
			}
			if len1 == 0 {
				break
			}
			for {
				len2--
				if len2 == 0 || c(arr[base+len1-1], arr[base+len1+len2-1]) > 0 {
					break
				}
			}
		}
	}
}

// mergeLeft merges arr[base:base+leftLen] and the rightLen elements
// after it into the positions starting at base+dist, swapping with the
// buffer that lives there. dist is normally negative. On return the
// merged run occupies the old buffer positions and the buffer elements
// sit, in arbitrary order, where the runs were.
func (c cmpFunc[E]) mergeLeft(arr []E, base, leftLen, rightLen, dist int) {
	left, right := 0, leftLen
	rightLen += leftLen
	for right < rightLen {
		if left == leftLen || c(arr[base+left], arr[base+right]) > 0 {
			arr[base+dist], arr[base+right] = arr[base+right], arr[base+dist]
			right++
		} else {
			arr[base+dist], arr[base+left] = arr[base+left], arr[base+dist]
			left++
		}
		dist++
	}
	if dist != left {
		multiSwap(arr, base+dist, base+left, leftLen-left)
	}
}

// mergeRight is the mirror of mergeLeft: it merges right to left into
// the buffer that follows the two runs, so dist is positive.
func (c cmpFunc[E]) mergeRight(arr []E, base, leftLen, rightLen, dist int) {
	mergedPos := leftLen + rightLen + dist - 1
	right, left := leftLen+rightLen-1, leftLen-1
	for left >= 0 {
		if right < leftLen || c(arr[base+left], arr[base+right]) > 0 {
			arr[base+mergedPos], arr[base+left] = arr[base+left], arr[base+mergedPos]
			left--
		} else {
			arr[base+mergedPos], arr[base+right] = arr[base+right], arr[base+mergedPos]
			right--
		}
		mergedPos--
	}
	if right != mergedPos {
		for right >= leftLen {
			arr[base+mergedPos], arr[base+right] = arr[base+right], arr[base+mergedPos]
			mergedPos--
			right--
		}
	}
}

// smartMergeWithBuffer merges the leftover fragment arr[base:base+
// leftOverLen] with the blockLen elements after it, swapping output
// into the buffer at base-blockLen. leftOverFrag is 0 when the fragment
// came from stream A and 1 for stream B; ties break toward whichever
// stream keeps the original order. It returns the length and stream of
// the fragment left unconsumed.
func (c cmpFunc[E]) smartMergeWithBuffer(arr []E, base, leftOverLen, leftOverFrag, blockLen int) (int, int) {
	dist := -blockLen
	left, right := 0, leftOverLen
	leftEnd, rightEnd := right, right+blockLen
	fragType := 1 - leftOverFrag // 1 if inverted
	for left < leftEnd && right < rightEnd {
		if c(arr[base+left], arr[base+right])-fragType < 0 {
			arr[base+dist], arr[base+left] = arr[base+left], arr[base+dist]
			left++
		} else {
			arr[base+dist], arr[base+right] = arr[base+right], arr[base+dist]
			right++
		}
		dist++
	}
	if left < leftEnd {
		leftOverLen = leftEnd - left
		// Park the unconsumed left side at the end of the block.
		for left < leftEnd {
			leftEnd--
			rightEnd--
			arr[base+leftEnd], arr[base+rightEnd] = arr[base+rightEnd], arr[base+leftEnd]
		}
		return leftOverLen, leftOverFrag
	}
	return rightEnd - right, fragType
}

// smartMergeWithoutBuffer is the rotation-only variant used when block
// tagging is active but no buffer is.
func (c cmpFunc[E]) smartMergeWithoutBuffer(arr []E, base, leftOverLen, leftOverFrag, regBlockLen int) (int, int) {
	if regBlockLen == 0 {
		return leftOverLen, leftOverFrag
	}
	len1, len2 := leftOverLen, regBlockLen
	fragType := 1 - leftOverFrag // 1 if inverted
	if len1 != 0 && c(arr[base+len1-1], arr[base+len1])-fragType >= 0 {
		for len1 != 0 {
			var foundLen int
			if fragType != 0 {
				foundLen = c.binSearchLeft(arr, base+len1, len2, arr[base])
			} else {
				foundLen = c.binSearchRight(arr, base+len1, len2, arr[base])
			}
			if foundLen != 0 {
				rotate(arr, base, len1, foundLen)
				base += foundLen
				len2 -= foundLen
			}
			if len2 == 0 {
				return len1, leftOverFrag
			}
			for {
				base++
				len1--
				if len1 == 0 || c(arr[base], arr[base+len1])-fragType >= 0 {
					break
				}
			}
		}
	}
	return len2, fragType
}

// mergeLeftExt is mergeLeft with moves instead of swaps, for when the
// region at base+dist is expendable because its contents were saved to
// an external buffer.
func (c cmpFunc[E]) mergeLeftExt(arr []E, base, leftEnd, rightEnd, dist int) {
	left, right := 0, leftEnd
	rightEnd += leftEnd
	for right < rightEnd {
		if left == leftEnd || c(arr[base+left], arr[base+right]) > 0 {
			arr[base+dist] = arr[base+right]
			right++
		} else {
			arr[base+dist] = arr[base+left]
			left++
		}
		dist++
	}
	if dist != left {
		for left < leftEnd {
			arr[base+dist] = arr[base+left]
			dist++
			left++
		}
	}
}

// smartMergeExt is smartMergeWithBuffer with moves instead of swaps.
func (c cmpFunc[E]) smartMergeExt(arr []E, base, leftOverLen, leftOverFrag, blockLen int) (int, int) {
	dist := -blockLen
	left, right := 0, leftOverLen
	leftEnd, rightEnd := right, right+blockLen
	fragType := 1 - leftOverFrag // 1 if inverted
	for left < leftEnd && right < rightEnd {
		if c(arr[base+left], arr[base+right])-fragType < 0 {
			arr[base+dist] = arr[base+left]
			left++
		} else {
			arr[base+dist] = arr[base+right]
			right++
		}
		dist++
	}
	if left < leftEnd {
		leftOverLen = leftEnd - left
		for left < leftEnd {
			rightEnd--
			leftEnd--
			arr[base+rightEnd] = arr[base+leftEnd]
		}
		return leftOverLen, leftOverFrag
	}
	return rightEnd - right, fragType
}

// mergeBuffersLeft walks the key-tagged blocks starting at base and
// merges them into one sorted run beginning at base-regBlockLen.
// The keys at keysPos are in the same order as the blocks; a key
// comparing below midkey marks a stream A block. blockCount regular
// blocks are followed by aBlockCount stream A blocks and then an
// irregular stream B tail of lastLen elements that belongs before them.
// lastLen == 0 requires aBlockCount == 0; the reverse may hold.
func (c cmpFunc[E]) mergeBuffersLeft(arr []E, keysPos int, midkey E, base, blockCount, regBlockLen int, haveBuffer bool, aBlockCount, lastLen int) {
	if blockCount == 0 {
		totalALen := aBlockCount * regBlockLen
		if haveBuffer {
			c.mergeLeft(arr, base, totalALen, lastLen, -regBlockLen)
		} else {
			c.mergeWithoutBuffer(arr, base, totalALen, lastLen)
		}
		return
	}

	leftOverLen, processIndex := regBlockLen, regBlockLen
	leftOverFrag := 0
	if c(arr[keysPos], midkey) >= 0 {
		leftOverFrag = 1
	}
	var restToProcess int

	for keyIndex := 1; keyIndex < blockCount; keyIndex++ {
		restToProcess = processIndex - leftOverLen
		nextFrag := 0
		if c(arr[keysPos+keyIndex], midkey) >= 0 {
			nextFrag = 1
		}
		if nextFrag == leftOverFrag {
			// Same stream: slide the leftover into the buffer slot
			// and restart from the new block.
			if haveBuffer {
				multiSwap(arr, base+restToProcess-regBlockLen, base+restToProcess, leftOverLen)
			}
			leftOverLen = regBlockLen
		} else {
			if haveBuffer {
				leftOverLen, leftOverFrag = c.smartMergeWithBuffer(arr, base+restToProcess, leftOverLen, leftOverFrag, regBlockLen)
			} else {
				leftOverLen, leftOverFrag = c.smartMergeWithoutBuffer(arr, base+restToProcess, leftOverLen, leftOverFrag, regBlockLen)
			}
		}
		processIndex += regBlockLen
	}
	restToProcess = processIndex - leftOverLen

	if lastLen != 0 {
		if leftOverFrag != 0 {
			if haveBuffer {
				multiSwap(arr, base+restToProcess-regBlockLen, base+restToProcess, leftOverLen)
			}
			restToProcess = processIndex
			leftOverLen = regBlockLen * aBlockCount
			leftOverFrag = 0
		} else {
			// The block sort guarantees the pending stream A blocks
			// order entirely before the irregular tail, so the
			// fragment absorbs them without re-checking.
			leftOverLen += regBlockLen * aBlockCount
		}
		if haveBuffer {
			c.mergeLeft(arr, base+restToProcess, leftOverLen, lastLen, -regBlockLen)
		} else {
			c.mergeWithoutBuffer(arr, base+restToProcess, leftOverLen, lastLen)
		}
	} else if haveBuffer {
		multiSwap(arr, base+restToProcess, base+restToProcess-regBlockLen, leftOverLen)
	}
}

// mergeBuffersLeftExt is mergeBuffersLeft for the external-buffer path:
// the buffer contents were saved aside, so blocks are moved, not
// swapped.
func (c cmpFunc[E]) mergeBuffersLeftExt(arr []E, keysPos int, midkey E, base, blockCount, regBlockLen, aBlockCount, lastLen int) {
	if blockCount == 0 {
		c.mergeLeftExt(arr, base, aBlockCount*regBlockLen, lastLen, -regBlockLen)
		return
	}

	leftOverLen, processIndex := regBlockLen, regBlockLen
	leftOverFrag := 0
	if c(arr[keysPos], midkey) >= 0 {
		leftOverFrag = 1
	}
	var restToProcess int

	for keyIndex := 1; keyIndex < blockCount; keyIndex++ {
		restToProcess = processIndex - leftOverLen
		nextFrag := 0
		if c(arr[keysPos+keyIndex], midkey) >= 0 {
			nextFrag = 1
		}
		if nextFrag == leftOverFrag {
			copy(arr[base+restToProcess-regBlockLen:], arr[base+restToProcess:base+restToProcess+leftOverLen])
			leftOverLen = regBlockLen
		} else {
			leftOverLen, leftOverFrag = c.smartMergeExt(arr, base+restToProcess, leftOverLen, leftOverFrag, regBlockLen)
		}
		processIndex += regBlockLen
	}
	restToProcess = processIndex - leftOverLen

	if lastLen != 0 {
		if leftOverFrag != 0 {
			copy(arr[base+restToProcess-regBlockLen:], arr[base+restToProcess:base+restToProcess+leftOverLen])
			restToProcess = processIndex
			leftOverLen = regBlockLen * aBlockCount
			leftOverFrag = 0
		} else {
			leftOverLen += regBlockLen * aBlockCount
		}
		c.mergeLeftExt(arr, base+restToProcess, leftOverLen, lastLen, -regBlockLen)
	} else {
		copy(arr[base+restToProcess-regBlockLen:], arr[base+restToProcess:base+restToProcess+leftOverLen])
	}
}

// buildBlocks turns arr[base:base+length] into sorted runs of length
// 2*buildLen plus a shorter sorted tail. On entry the buildLen elements
// before base are the buffer; on exit the buffer, permuted, is again the
// buildLen positions before base and the runs start at base. While the run
// length fits in extBuf the doubling passes merge by moving through the
// external buffer; after that they swap through the in-place one.
func (c cmpFunc[E]) buildBlocks(arr []E, base, length, buildLen int, extBuf []E) {
	buildBuf := buildLen
	if len(extBuf) < buildBuf {
		buildBuf = len(extBuf)
	}
	for buildBuf&(buildBuf-1) != 0 {
		buildBuf &= buildBuf - 1 // round down to a power of two
	}

	var part int
	if buildBuf != 0 {
		copy(extBuf, arr[base-buildBuf:base])

		// Pair sort, shifting each pair two positions left into the
		// buffer so the free space opens up on the right.
		for dist := 1; dist < length; dist += 2 {
			extraDist := 0
			if c(arr[base+dist-1], arr[base+dist]) > 0 {
				extraDist = 1
			}
			arr[base+dist-3] = arr[base+dist-1+extraDist]
			arr[base+dist-2] = arr[base+dist-extraDist]
		}
		if length%2 != 0 {
			arr[base+length-3] = arr[base+length-1]
		}
		base -= 2

		for part = 2; part < buildBuf; part *= 2 {
			left := 0
			right := length - 2*part
			for left <= right {
				c.mergeLeftExt(arr, base+left, part, part, -part)
				left += 2 * part
			}
			rest := length - left
			if rest > part {
				c.mergeLeftExt(arr, base+left, part, rest-part, -part)
			} else {
				for ; left < length; left++ {
					arr[base+left-part] = arr[base+left]
				}
			}
			base -= part
		}
		copy(arr[base+length:], extBuf[:buildBuf])
	} else {
		for dist := 1; dist < length; dist += 2 {
			extraDist := 0
			if c(arr[base+dist-1], arr[base+dist]) > 0 {
				extraDist = 1
			}
			arr[base+dist-3], arr[base+dist-1+extraDist] = arr[base+dist-1+extraDist], arr[base+dist-3]
			arr[base+dist-2], arr[base+dist-extraDist] = arr[base+dist-extraDist], arr[base+dist-2]
		}
		if length%2 != 0 {
			arr[base+length-1], arr[base+length-3] = arr[base+length-3], arr[base+length-1]
		}
		base -= 2
		part = 2
	}

	for part < buildLen {
		left := 0
		right := length - 2*part
		for left <= right {
			c.mergeLeft(arr, base+left, part, part, -part)
			left += 2 * part
		}
		rest := length - left
		if rest > part {
			c.mergeLeft(arr, base+left, part, rest-part, -part)
		} else {
			rotate(arr, base+left-part, part, rest)
		}
		base -= part
		part *= 2
	}

	// Final pass right to left with the merge output on the right, so
	// the buffer ends up before the runs again.
	restToBuild := length % (2 * buildLen)
	leftOverPos := length - restToBuild
	if restToBuild <= buildLen {
		rotate(arr, base+leftOverPos, restToBuild, buildLen)
	} else {
		c.mergeRight(arr, base+leftOverPos, buildLen, restToBuild-buildLen, buildLen)
	}
	for leftOverPos > 0 {
		leftOverPos -= 2 * buildLen
		c.mergeRight(arr, base+leftOverPos, buildLen, buildLen, buildLen)
	}
}

// combineBlocks merges every pair of adjacent sorted runs of length
// buildLen in arr[base:base+length] into runs of length 2*buildLen,
// permuting regBlockLen-sized blocks by their first elements and using
// the keys at keysPos as stability witnesses. buildLen and the key
// count are powers of two and 2*buildLen/regBlockLen keys are
// guaranteed. With extBuf non-nil the buffer contents are saved aside
// and blocks move instead of swapping.
func (c cmpFunc[E]) combineBlocks(arr []E, keysPos, base, length, buildLen, regBlockLen int, haveBuffer bool, extBuf []E) {
	combinedLen := length / (2 * buildLen)
	leftOver := length % (2 * buildLen)
	if leftOver <= buildLen {
		length -= leftOver
		leftOver = 0
	}

	if extBuf != nil {
		copy(extBuf, arr[base-regBlockLen:base])
	}

	for i := 0; i <= combinedLen; i++ {
		if i == combinedLen && leftOver == 0 {
			break
		}

		blockPos := base + i*2*buildLen
		groupLen := 2 * buildLen
		extra := 0
		if i == combinedLen {
			groupLen = leftOver
			extra = 1
		}
		blockCount := groupLen / regBlockLen

		// The previous group scrambled the keys; resort the ones this
		// group tags with.
		c.insertSort(arr[keysPos : keysPos+blockCount+extra])

		midkey := buildLen / regBlockLen

		// Selection sort of the blocks by first element, tag value as
		// the tiebreak. Tags move in lockstep and the midkey index is
		// tracked through the swaps.
		for index := 1; index < blockCount; index++ {
			leftIndex := index - 1
			for rightIndex := index; rightIndex < blockCount; rightIndex++ {
				rightComp := c(arr[blockPos+leftIndex*regBlockLen], arr[blockPos+rightIndex*regBlockLen])
				if rightComp > 0 || (rightComp == 0 && c(arr[keysPos+leftIndex], arr[keysPos+rightIndex]) > 0) {
					leftIndex = rightIndex
				}
			}
			if leftIndex != index-1 {
				multiSwap(arr, blockPos+(index-1)*regBlockLen, blockPos+leftIndex*regBlockLen, regBlockLen)
				arr[keysPos+index-1], arr[keysPos+leftIndex] = arr[keysPos+leftIndex], arr[keysPos+index-1]
				if midkey == index-1 || midkey == leftIndex {
					midkey ^= (index - 1) ^ leftIndex
				}
			}
		}

		aBlockCount, lastLen := 0, 0
		if i == combinedLen {
			lastLen = leftOver % regBlockLen
		}
		if lastLen != 0 {
			// Count the trailing stream A blocks that order after the
			// irregular tail's first element.
			for aBlockCount < blockCount && c(arr[blockPos+blockCount*regBlockLen], arr[blockPos+(blockCount-aBlockCount-1)*regBlockLen]) < 0 {
				aBlockCount++
			}
		}

		if extBuf != nil {
			c.mergeBuffersLeftExt(arr, keysPos, arr[keysPos+midkey], blockPos, blockCount-aBlockCount, regBlockLen, aBlockCount, lastLen)
		} else {
			c.mergeBuffersLeft(arr, keysPos, arr[keysPos+midkey], blockPos, blockCount-aBlockCount, regBlockLen, haveBuffer, aBlockCount, lastLen)
		}
	}

	// The merged output sits regBlockLen before base; slide it back
	// and restore the buffer.
	if extBuf != nil {
		for i := length - 1; i >= 0; i-- {
			arr[base+i] = arr[base+i-regBlockLen]
		}
		copy(arr[base-regBlockLen:base], extBuf[:regBlockLen])
	} else if haveBuffer {
		for length--; length >= 0; length-- {
			arr[base+length], arr[base+length-regBlockLen] = arr[base+length-regBlockLen], arr[base+length]
		}
	}
}

// lazyStableSort is the fallback when fewer than four distinct values
// exist: a bottom-up merge sort built on rotation merges.
func (c cmpFunc[E]) lazyStableSort(arr []E) {
	length := len(arr)
	for dist := 1; dist < length; dist += 2 {
		if c(arr[dist-1], arr[dist]) > 0 {
			arr[dist-1], arr[dist] = arr[dist], arr[dist-1]
		}
	}
	for part := 2; part < length; part *= 2 {
		left := 0
		right := length - 2*part
		for left <= right {
			c.mergeWithoutBuffer(arr, left, part, part)
			left += 2 * part
		}
		rest := length - left
		if rest > part {
			c.mergeWithoutBuffer(arr, left, part, rest-part)
		}
	}
}

// commonSort is the driver shared by every variant. extBuf may be nil.
func (c cmpFunc[E]) commonSort(arr []E, extBuf []E) {
	length := len(arr)
	if length <= 16 {
		c.insertSort(arr)
		return
	}

	blockLen := 1
	for blockLen*blockLen < length {
		blockLen *= 2
	}
	keyCount := (length-1)/blockLen + 1
	keysFound := c.findKeys(arr, keyCount+blockLen)

	bufferEnabled := true
	if keysFound < keyCount+blockLen {
		if keysFound < 4 {
			c.lazyStableSort(arr)
			return
		}
		// Too few distinct values for a separate buffer; the keys
		// will double as one. Shrink the key count to a power of two.
		keyCount = blockLen
		for keyCount > keysFound {
			keyCount /= 2
		}
		bufferEnabled = false
		blockLen = 0
	}

	dist := blockLen + keyCount
	buildLen := keyCount
	if bufferEnabled {
		buildLen = blockLen
		c.buildBlocks(arr, dist, length-dist, buildLen, extBuf)
	} else {
		c.buildBlocks(arr, dist, length-dist, buildLen, nil)
	}

	for buildLen *= 2; length-dist > buildLen; buildLen *= 2 {
		regBlockLen := blockLen
		buildBufEnabled := bufferEnabled
		if !bufferEnabled {
			if keyCount > 4 && keyCount/8*keyCount >= buildLen {
				// Enough keys to spare half of them as a buffer.
				regBlockLen = keyCount / 2
				buildBufEnabled = true
			} else {
				calcKeys := 1
				quot := int64(buildLen) * int64(keysFound) / 2
				for calcKeys < keyCount && quot != 0 {
					calcKeys *= 2
					quot /= 8
				}
				regBlockLen = (2 * buildLen) / calcKeys
			}
		}
		var eb []E
		if buildBufEnabled && regBlockLen <= len(extBuf) {
			eb = extBuf
		}
		c.combineBlocks(arr, 0, dist, length-dist, buildLen, regBlockLen, buildBufEnabled, eb)
	}

	c.insertSort(arr[:dist])
	c.mergeWithoutBuffer(arr, 0, dist, length-dist)
}
