package bitsquatting

import (
	"dommorph/helper"
)

// GetBitsquattingPatterns returns a list of strings where one letter differs from the
// original by a single flipped bit, keeping only characters valid in a hostname label
func GetBitsquattingPatterns(name string) []string {
	results := []string{}
	masks := []byte{1, 2, 4, 8, 16, 32, 64, 128}

	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			continue
		}
		for _, m := range masks {
			b := name[i] ^ m
			if (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || b == '-' {
				results = append(results, name[:i]+string(b)+name[i+1:])
			}
		}
	}
	return helper.RemoveDuplicate(results)
}
