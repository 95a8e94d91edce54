package hyphenation

import (
	"dommorph/helper"
)

// GetHyphenationPatterns returns a list of strings with a hyphen inserted between
// two letters. A name of n letters without hyphen gives n-1 patterns.
func GetHyphenationPatterns(name string) []string {
	runes := []rune(name)
	results := []string{}
	for i := 1; i < len(runes); i++ {
		results = append(results, string(runes[:i])+"-"+string(runes[i:]))
	}
	return helper.RemoveDuplicate(results)
}
