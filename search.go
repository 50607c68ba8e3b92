package suffixindex

import (
	"bytes"
	"sort"

	"github.com/viniciusth/rmq"
)

// SearchPattern binary-searches the suffix array for an occurrence of pattern
// in text and returns its start offset, or -1 when the pattern does not
// occur. Comparison is bounded to len(pattern) bytes, so any suffix starting
// with the pattern is a match; which occurrence is returned is whichever the
// bisection probes first, not necessarily the leftmost. An empty pattern
// matches trivially at the first suffix probed; searching an empty text
// returns -1.
func SearchPattern(text []byte, suffixArray []int, pattern []byte) int {
	low, high := 0, len(suffixArray)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		candidate := text[suffixArray[mid]:]
		if len(candidate) > len(pattern) {
			candidate = candidate[:len(pattern)]
		}
		// A candidate shorter than the pattern compares smaller when it is a
		// strict prefix of it, matching suffix order.
		switch r := bytes.Compare(pattern, candidate); {
		case r == 0:
			return suffixArray[mid]
		case r < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return -1
}

// patternBand returns the range [lo, hi] of suffix array positions whose
// suffixes have pattern as a prefix, or (-1, -1) when there is none. When
// lcpRMQ is non-nil it must be a range-minimum structure over lcp, and the
// left search then costs O(|pattern| + log n) byte comparisons instead of
// O(|pattern| * log n).
func patternBand(pattern, text []byte, suffixArray, lcp []int, lcpRMQ *rmq.RMQHybridNaive[int]) (int, int) {
	n := len(suffixArray)

	// bestPos is the sorted position with the longest verified match against
	// pattern; best is that length. Invariant: pattern[:best] equals the
	// first best bytes of the suffix at bestPos.
	bestPos, best := -1, 0

	// extend reports whether pattern <= suffix at sorted position i, growing
	// the verified match from best. Callers guarantee the suffix at i agrees
	// with pattern on the first best bytes.
	extend := func(i int) bool {
		s := suffixArray[i]
		for best < len(pattern) && s+best < len(text) && pattern[best] == text[s+best] {
			best++
		}
		bestPos = i
		if best == len(pattern) {
			return true
		}
		if s+best == len(text) {
			// Suffix is a strict prefix of the pattern.
			return false
		}
		return pattern[best] < text[s+best]
	}

	// First sorted position whose suffix is >= pattern.
	lo := sort.Search(n, func(i int) bool {
		if lcpRMQ == nil {
			return bytes.Compare(pattern, text[suffixArray[i]:]) <= 0
		}
		if bestPos == -1 {
			return extend(i)
		}
		common := lcp[lcpRMQ.Query(min(bestPos, i), max(bestPos, i)-1)]
		if common < best {
			// The suffix at i diverges from the pattern inside the verified
			// region, so the comparison is decided by which side of bestPos
			// it sits on.
			return i > bestPos
		}
		return extend(i)
	})

	if lo == n {
		return -1, -1
	}
	if lcpRMQ != nil {
		if best < len(pattern) {
			return -1, -1
		}
	} else if !bytes.HasPrefix(text[suffixArray[lo]:], pattern) {
		return -1, -1
	}

	// First sorted position after lo whose suffix no longer has pattern as a
	// prefix; the band ends just before it.
	width := sort.Search(n-lo, func(i int) bool {
		if i == 0 {
			return false
		}
		if lcpRMQ != nil {
			return lcp[lcpRMQ.Query(lo, lo+i-1)] < len(pattern)
		}
		return !bytes.HasPrefix(text[suffixArray[lo+i]:], pattern)
	})

	return lo, lo + width - 1
}
