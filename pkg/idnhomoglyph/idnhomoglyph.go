// Package idnhomoglyph builds IDN homographs: names where one latin letter is
// replaced by a unicode confusable, returned in their punycode form.
package idnhomoglyph

import (
	"dommorph/helper"
	"sync"
	"unicode/utf8"

	"github.com/picatz/homoglyphr"
	"golang.org/x/net/idna"
)

var (
	once       sync.Once
	confusable map[rune][]string
)

// getConfusables returns, for each lowercase latin letter, its non-ASCII lookalikes
func getConfusables() map[rune][]string {
	once.Do(func() {
		confusable = make(map[rune][]string)
		for letter := 'a'; letter <= 'z'; letter++ {
			for c := range homoglyphr.StreamAllRelatedCharacters(string(letter)) {
				r, size := utf8.DecodeRuneInString(c)
				if size != len(c) || r < utf8.RuneSelf {
					continue
				}
				confusable[letter] = append(confusable[letter], c)
			}
			confusable[letter] = helper.RemoveDuplicate(confusable[letter])
		}
	})
	return confusable
}

// GetIDNHomoglyphPatterns returns the punycode of name with one letter replaced by a
// unicode confusable. Variants that can't be encoded are skipped.
func GetIDNHomoglyphPatterns(name string) []string {
	table := getConfusables()
	runes := []rune(name)
	results := []string{}
	for i, c := range runes {
		for _, glyph := range table[c] {
			ascii, err := idna.Punycode.ToASCII(string(runes[:i]) + glyph + string(runes[i+1:]))
			if err != nil || ascii == name {
				continue
			}
			results = append(results, ascii)
		}
	}
	return helper.RemoveDuplicate(results)
}
