package tldswap

import (
	"strings"
)

// GetDefaultTLDs returns the preference list of TLDs commonly used for typosquatting
func GetDefaultTLDs() []string {
	return []string{".com", ".co", ".net", ".org", ".info", ".biz", ".xyz", ".io"}
}

// Normalize lowers tld and prefixes it with a dot
func Normalize(tld string) string {
	tld = strings.ToLower(strings.TrimSpace(tld))
	if tld == "" || strings.HasPrefix(tld, ".") {
		return tld
	}
	return "." + tld
}

// GetTLDPatterns returns name joined to every TLD of the list but originalTLD
func GetTLDPatterns(name, originalTLD string, tlds []string) []string {
	original := Normalize(originalTLD)
	seen := map[string]bool{original: true}
	results := []string{}
	for _, t := range tlds {
		t = Normalize(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		results = append(results, name+t)
	}
	return results
}
