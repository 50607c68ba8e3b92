package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/viniciusth/suffixindex"
)

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		}
		os.Exit(1)
	}
	return in.Text()
}

func main() {
	textFlag := flag.String("text", "", "Text to index (prompted on stdin when empty)")
	patternFlag := flag.String("pattern", "", "Pattern to search for (prompted on stdin when empty)")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)

	text := *textFlag
	if text == "" {
		text = prompt(in, "Enter text: ")
	}

	data := []byte(text)
	sa := suffixindex.BuildSuffixArray(data)
	lcp := suffixindex.BuildLCPArray(sa, data)

	fmt.Println("\n--- Suffix Array ---")
	for _, off := range sa {
		fmt.Printf("%2d : %s\n", off, data[off:])
	}

	fmt.Println("\n--- LCP Array ---")
	for i, l := range lcp {
		fmt.Printf("lcp[%2d] = %d\n", i, l)
	}

	pattern := *patternFlag
	if pattern == "" {
		pattern = prompt(in, "\nEnter pattern to search: ")
	}

	if pos := suffixindex.SearchPattern(data, sa, []byte(pattern)); pos >= 0 {
		fmt.Printf("Pattern found at index %d\n", pos)
	} else {
		fmt.Println("Pattern not found")
	}
}
