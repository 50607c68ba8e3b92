package suffixindex

// BuildLCPArray computes the LCP array for text and its suffix array using
// Kasai's algorithm in O(n) time. Entry p is the length of the longest common
// prefix of the suffixes at sorted positions p and p+1, so the result has
// len(suffixArray)-1 entries (none for an empty or single-byte text).
//
// suffixArray must be a valid suffix array for text (see
// ValidateSuffixArray); the result is unspecified otherwise.
func BuildLCPArray(suffixArray []int, text []byte) []int {
	if len(suffixArray) == 0 {
		return nil
	}

	rank := make([]int, len(suffixArray))
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}

	lcp := make([]int, len(suffixArray)-1)
	// l carries across offsets in raw text order: dropping the first byte of
	// a suffix shrinks its LCP with its sorted successor by at most one, so
	// total extension work stays linear.
	l := 0
	for i := range suffixArray {
		if rank[i]+1 == len(suffixArray) {
			l = 0
			continue
		}
		j := suffixArray[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}
