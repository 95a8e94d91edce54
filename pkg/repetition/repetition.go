package repetition

import (
	"dommorph/helper"
)

// GetRepetitionPatterns returns a list of strings with one doubled letter
func GetRepetitionPatterns(name string) []string {
	runes := []rune(name)
	results := []string{}
	for i, c := range runes {
		results = append(results, string(runes[:i+1])+string(c)+string(runes[i+1:]))
	}
	return helper.RemoveDuplicate(results)
}
