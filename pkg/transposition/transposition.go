package transposition

import (
	"dommorph/helper"
)

// GetTranspositionPatterns returns a list of strings with two adjacent letters swapped
func GetTranspositionPatterns(name string) []string {
	runes := []rune(name)
	results := []string{}
	for i := 0; i < len(runes)-1; i++ {
		// swapping identical letters gives back the name
		if runes[i] == runes[i+1] {
			continue
		}
		swapped := make([]rune, len(runes))
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		results = append(results, string(swapped))
	}
	return helper.RemoveDuplicate(results)
}
