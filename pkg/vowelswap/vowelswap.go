package vowelswap

import (
	"dommorph/helper"
)

var vowels = [...]rune{'a', 'e', 'i', 'o', 'u', 'y'}

func isVowel(c rune) bool {
	for _, v := range vowels {
		if c == v {
			return true
		}
	}
	return false
}

// GetVowelSwapPatterns return a list of strings where one vowel is replaced by another
func GetVowelSwapPatterns(name string) []string {
	results := []string{}
	runes := []rune(name)

	for i, c := range runes {
		if !isVowel(c) {
			continue
		}
		for _, v := range vowels {
			if v != c {
				results = append(results, string(runes[:i])+string(v)+string(runes[i+1:]))
			}
		}
	}
	return helper.RemoveDuplicate(results)
}
