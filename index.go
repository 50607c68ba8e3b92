package suffixindex

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("suffixindex: invalid UTF-8 encoding in input text")
)

type Builder struct {
	text          string
	useLCP        bool
	caseSensitive bool
	normalize     bool
}

func NewBuilder(text string) *Builder {
	return &Builder{
		text:          text,
		useLCP:        true,
		caseSensitive: false,
		normalize:     true,
	}
}

// Skips the LCP array construction, this makes FindAll's boundary search
// O(|P| * log(|T|)) instead of O(|P| + log(|T|)).
// Saves O(|T|) memory: doesn't keep the LCP array and its RMQ structure.
// Trade-off: FindAll and Count are slower, but you spend less memory.
func (b *Builder) SkipLCP() *Builder {
	b.useLCP = false
	return b
}

// Makes the search case sensitive.
func (b *Builder) CaseSensitive() *Builder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the text with NFC.
func (b *Builder) SkipNormalization() *Builder {
	b.normalize = false
	return b
}

func (b *Builder) Build() (*Index, error) {
	if !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}

	text := []byte(applyTransforms(b.text, b.caseSensitive, b.normalize))
	suffixArray := BuildSuffixArray(text)

	var lcp []int
	var lcpRMQ *rmq.RMQHybridNaive[int]
	if b.useLCP {
		lcp = BuildLCPArray(suffixArray, text)
		if len(lcp) > 0 {
			lcpRMQ = rmq.NewRMQHybridNaive(lcp)
		}
	}

	return &Index{
		text:          text,
		suffixArray:   suffixArray,
		lcp:           lcp,
		lcpRMQ:        lcpRMQ,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}, nil
}

// Index answers substring queries over a single text via its suffix array.
// All offsets returned by its methods refer to the transformed text, which
// Text reports; with CaseSensitive and SkipNormalization set the transformed
// text is the input verbatim.
type Index struct {
	text          []byte
	suffixArray   []int
	lcp           []int
	lcpRMQ        *rmq.RMQHybridNaive[int]
	caseSensitive bool
	normalize     bool
}

func applyTransforms(s string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	if normalize {
		s = norm.NFC.String(s)
	}
	return s
}

// Search returns the start offset of one occurrence of pattern, or -1 when it
// does not occur. Which occurrence is returned is unspecified; use FindAll
// for all of them.
func (idx *Index) Search(pattern string) int {
	p := applyTransforms(pattern, idx.caseSensitive, idx.normalize)
	return SearchPattern(idx.text, idx.suffixArray, []byte(p))
}

// Contains reports whether pattern occurs in the text.
func (idx *Index) Contains(pattern string) bool {
	lo, _ := idx.band(pattern)
	return lo != -1
}

// Count returns the number of occurrences of pattern in the text.
func (idx *Index) Count(pattern string) int {
	lo, hi := idx.band(pattern)
	if lo == -1 {
		return 0
	}
	return hi - lo + 1
}

// FindAll returns the start offsets of every occurrence of pattern, in
// ascending text order. An empty pattern matches at every offset.
func (idx *Index) FindAll(pattern string) []int {
	lo, hi := idx.band(pattern)
	if lo == -1 {
		return nil
	}
	offsets := slices.Clone(idx.suffixArray[lo : hi+1])
	slices.Sort(offsets)
	return offsets
}

func (idx *Index) band(pattern string) (int, int) {
	p := applyTransforms(pattern, idx.caseSensitive, idx.normalize)
	return patternBand([]byte(p), idx.text, idx.suffixArray, idx.lcp, idx.lcpRMQ)
}

// Text returns the indexed text after transforms.
func (idx *Index) Text() string {
	return string(idx.text)
}

// SuffixArray returns a copy of the index's suffix array.
func (idx *Index) SuffixArray() []int {
	return slices.Clone(idx.suffixArray)
}

// LCPArray returns a copy of the index's LCP array, or nil when the index was
// built with SkipLCP.
func (idx *Index) LCPArray() []int {
	return slices.Clone(idx.lcp)
}
