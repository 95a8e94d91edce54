package omission

import (
	"dommorph/helper"
)

// GetOmissionPatterns returns a list of strings with one missing letter
func GetOmissionPatterns(name string) []string {
	runes := []rune(name)
	results := []string{}
	for i := range runes {
		r := string(runes[:i]) + string(runes[i+1:])
		if r == "" {
			continue
		}
		results = append(results, r)
	}
	return helper.RemoveDuplicate(results)
}
