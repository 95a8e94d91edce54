// Package typo gathers the keyboard slip techniques: omission, repetition and
// transposition of letters.
package typo

import (
	"dommorph/helper"
	"dommorph/pkg/omission"
	"dommorph/pkg/repetition"
	"dommorph/pkg/transposition"
)

// GetTypoPatterns returns omission, repetition and transposition patterns of name.
// For a name of n letters, at most 3n patterns are returned.
func GetTypoPatterns(name string) []string {
	results := []string{}
	results = append(results, omission.GetOmissionPatterns(name)...)
	results = append(results, repetition.GetRepetitionPatterns(name)...)
	results = append(results, transposition.GetTranspositionPatterns(name)...)
	return helper.RemoveItem(helper.RemoveDuplicate(results), name)
}
