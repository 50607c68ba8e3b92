package suffixindex

import (
	"bytes"
	"errors"

	"golang.org/x/exp/slices"
)

var (
	ErrInvalidSuffixArray = errors.New("suffixindex: suffix array is not a sorted permutation of the text's suffixes")
)

// rankKey is the sort key of one suffix during a doubling step. head is the
// dense rank of the suffix's prefix from the previous step, tail the rank of
// the suffix starting half a step further, or -1 when that position falls off
// the end of the text. Equal keys mean identical prefix content so far.
type rankKey struct {
	head, tail int
}

// BuildSuffixArray returns the suffix array of text: the start offsets of all
// suffixes, sorted so that text[sa[i]:] <= text[sa[i+1]:] bytewise. It uses
// prefix doubling: O(log n) rank-and-sort passes, never re-reading raw
// characters after the seed pass. An empty text yields an empty array. The
// result is a fresh permutation of [0, len(text)) owned by the caller.
func BuildSuffixArray(text []byte) []int {
	n := len(text)
	order := make([]int, n)
	if n == 0 {
		return order
	}

	// Seed with the first two characters: head is the byte at the offset,
	// tail the byte after it. Sorting by this key orders suffixes by their
	// 2-character prefixes.
	keys := make([]rankKey, n)
	for i := range text {
		order[i] = i
		keys[i] = rankKey{head: int(text[i]), tail: -1}
		if i+1 < n {
			keys[i].tail = int(text[i+1])
		}
	}
	sortByKey(order, keys)

	// Each pass extends the compared prefix length to width by composing two
	// half-width ranks, then re-sorts. Once width >= 2n all suffixes are
	// fully distinguished.
	for width := 4; width < 2*n; width *= 2 {
		rank := densify(order, keys)
		next := make([]rankKey, n)
		for i := 0; i < n; i++ {
			next[i] = rankKey{head: rank[i], tail: -1}
			if j := i + width/2; j < n {
				next[i].tail = rank[j]
			}
		}
		keys = next
		sortByKey(order, keys)
	}

	return order
}

// densify numbers the equivalence classes of the current ordering: the first
// suffix gets rank 0 and each following suffix repeats its predecessor's rank
// exactly when their keys are equal. The returned slice is indexed by text
// offset.
func densify(order []int, keys []rankKey) []int {
	rank := make([]int, len(order))
	r := 0
	rank[order[0]] = 0
	for i := 1; i < len(order); i++ {
		if keys[order[i]] != keys[order[i-1]] {
			r++
		}
		rank[order[i]] = r
	}
	return rank
}

// sortByKey sorts the offsets by (head, tail). A tail of -1 sorts before any
// real rank, so an exhausted suffix orders before every suffix it is a strict
// prefix of.
func sortByKey(order []int, keys []rankKey) {
	slices.SortFunc(order, func(a, b int) int {
		if keys[a].head != keys[b].head {
			return keys[a].head - keys[b].head
		}
		return keys[a].tail - keys[b].tail
	})
}

// ValidateSuffixArray checks that suffixArray is a valid suffix array for
// text: a permutation of [0, len(text)) in suffix-sorted order. It returns
// ErrInvalidSuffixArray otherwise. BuildLCPArray assumes this holds and does
// not check it; callers feeding it an externally produced array can validate
// here first.
func ValidateSuffixArray(text []byte, suffixArray []int) error {
	if len(suffixArray) != len(text) {
		return ErrInvalidSuffixArray
	}
	seen := make([]bool, len(suffixArray))
	for _, i := range suffixArray {
		if i < 0 || i >= len(seen) || seen[i] {
			return ErrInvalidSuffixArray
		}
		seen[i] = true
	}
	for p := 1; p < len(suffixArray); p++ {
		if bytes.Compare(text[suffixArray[p-1]:], text[suffixArray[p]:]) > 0 {
			return ErrInvalidSuffixArray
		}
	}
	return nil
}
