package homoglyph

import (
	"dommorph/helper"
)

// Table maps a letter to the characters which look like it
type Table map[string][]string

// GetDefaultTable returns a new copy of the built-in homoglyph table
func GetDefaultTable() Table {
	return Table{
		"a": {"@", "4"},
		"e": {"3"},
		"i": {"1", "l"},
		"o": {"0"},
		"l": {"1", "i"},
		"s": {"5", "$"},
		"g": {"9"},
		"b": {"8"},
	}
}

// GetHomoglyphPatterns returns a list of strings where a single letter has been
// replaced by one of its homoglyphs
func GetHomoglyphPatterns(name string, table Table) []string {
	runes := []rune(name)
	results := []string{}
	for i, c := range runes {
		for _, glyph := range table[string(c)] {
			results = append(results, string(runes[:i])+glyph+string(runes[i+1:]))
		}
	}
	return helper.RemoveItem(helper.RemoveDuplicate(results), name)
}
