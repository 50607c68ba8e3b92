package suffixindex

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func naiveSuffixArray(text []byte) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func randomText(r *rand.Rand, n int, alphabet string) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = alphabet[r.Intn(len(alphabet))]
	}
	return text
}

func checkSuffixArray(t *testing.T, text []byte, sa []int) {
	t.Helper()
	if len(sa) != len(text) {
		t.Fatalf("suffix array length %d, want %d", len(sa), len(text))
	}
	seen := make([]bool, len(sa))
	for _, i := range sa {
		if i < 0 || i >= len(sa) || seen[i] {
			t.Fatalf("suffix array %v is not a permutation of [0,%d)", sa, len(sa))
		}
		seen[i] = true
	}
	for p := 1; p < len(sa); p++ {
		if bytes.Compare(text[sa[p-1]:], text[sa[p]:]) > 0 {
			t.Fatalf("text[%d:] > text[%d:] at sorted positions %d, %d", sa[p-1], sa[p], p-1, p)
		}
	}
}

func TestBuildSuffixArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"banana", "banana", []int{5, 3, 1, 0, 4, 2}},
		{"empty", "", []int{}},
		{"single", "x", []int{0}},
		{"aaaa", "aaaa", []int{3, 2, 1, 0}},
		{"abab", "abab", []int{2, 0, 3, 1}},
		{"mississippi", "mississippi", []int{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildSuffixArray([]byte(tc.text))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildSuffixArray(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}

func TestBuildSuffixArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	alphabets := []string{"a", "ab", "abc", "abcdefgh"}

	for trial := 0; trial < 300; trial++ {
		text := randomText(r, r.Intn(80), alphabets[trial%len(alphabets)])
		sa := BuildSuffixArray(text)
		checkSuffixArray(t, text, sa)

		if diff := cmp.Diff(naiveSuffixArray(text), sa); diff != "" {
			t.Fatalf("text %q mismatch with naive sort (-want +got):\n%s", text, diff)
		}

		// Deterministic: a rebuild yields the identical permutation.
		if diff := cmp.Diff(sa, BuildSuffixArray(text)); diff != "" {
			t.Fatalf("text %q rebuild differs (-first +second):\n%s", text, diff)
		}
	}
}

func TestValidateSuffixArray(t *testing.T) {
	text := []byte("banana")

	tests := []struct {
		name    string
		sa      []int
		wantErr bool
	}{
		{"valid", []int{5, 3, 1, 0, 4, 2}, false},
		{"wrong length", []int{5, 3, 1, 0, 4}, true},
		{"out of range", []int{5, 3, 1, 0, 4, 6}, true},
		{"negative", []int{5, 3, 1, 0, 4, -1}, true},
		{"duplicate", []int{5, 3, 1, 0, 4, 4}, true},
		{"unsorted", []int{0, 1, 2, 3, 4, 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSuffixArray(text, tc.sa)
			if tc.wantErr && err == nil {
				t.Errorf("ValidateSuffixArray(%v) = nil, want error", tc.sa)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateSuffixArray(%v) = %v, want nil", tc.sa, err)
			}
		})
	}

	if err := ValidateSuffixArray(nil, []int{}); err != nil {
		t.Errorf("empty text: %v", err)
	}
}

func FuzzBuildSuffixArray(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("ab"))
	f.Add([]byte("ba"))
	f.Add([]byte("banana"))
	f.Add([]byte("ababbab"))

	f.Fuzz(func(t *testing.T, text []byte) {
		if len(text) > 1000 {
			return
		}
		sa := BuildSuffixArray(text)
		checkSuffixArray(t, text, sa)
		if err := ValidateSuffixArray(text, sa); err != nil {
			t.Fatalf("ValidateSuffixArray rejects built array: %v", err)
		}
	})
}
