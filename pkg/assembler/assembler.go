package assembler

import (
	"dommorph/helper"
	"dommorph/pkg/bitsquatting"
	"dommorph/pkg/homoglyph"
	"dommorph/pkg/hyphenation"
	"dommorph/pkg/idnhomoglyph"
	"dommorph/pkg/model"
	"dommorph/pkg/tldswap"
	"dommorph/pkg/typo"
	"dommorph/pkg/vowelswap"

	"github.com/pkg/errors"
	"golang.org/x/net/idna"
)

// Names of the techniques used to alter the base name
const (
	Typo         = "typo"
	Homoglyph    = "homoglyph"
	Hyphenation  = "hyphenation"
	Bitsquatting = "bitsquatting"
	VowelSwap    = "vowelswap"
	IDNHomoglyph = "idnhomoglyph"
)

// GetDefaultTechniques returns the techniques enabled when none are configured
func GetDefaultTechniques() []string {
	return []string{Typo, Homoglyph, Hyphenation}
}

// Options holds what is needed to build the candidates of a domain
type Options struct {
	Techniques []string
	Homoglyphs homoglyph.Table
	TLDs       []string
}

// ValidateTechniques returns an error if a technique is unknown
func ValidateTechniques(techniques []string) error {
	for _, t := range techniques {
		switch t {
		case Typo, Homoglyph, Hyphenation, Bitsquatting, VowelSwap, IDNHomoglyph:
		default:
			return errors.Errorf("unknown technique %q", t)
		}
	}
	return nil
}

// GetBasePatterns returns the union of the patterns of every technique, in
// technique order, followed by the base name itself. A punycode base is altered in
// its unicode form and the patterns are encoded back.
func GetBasePatterns(base string, opts Options) []string {
	label := base
	if u, err := idna.Punycode.ToUnicode(base); err == nil {
		label = u
	}
	results := getLabelPatterns(label, opts)
	if label != base {
		results = encode(results)
	}
	results = append(results, base)
	return helper.RemoveDuplicate(results)
}

// encode converts unicode labels to punycode, dropping those which can't be encoded
func encode(labels []string) []string {
	results := make([]string, 0, len(labels))
	for _, l := range labels {
		ascii, err := idna.Punycode.ToASCII(l)
		if err != nil || ascii == "" {
			continue
		}
		results = append(results, ascii)
	}
	return results
}

func getLabelPatterns(base string, opts Options) []string {
	results := []string{}
	for _, t := range opts.Techniques {
		switch t {
		case Typo:
			results = append(results, typo.GetTypoPatterns(base)...)
		case Homoglyph:
			results = append(results, homoglyph.GetHomoglyphPatterns(base, opts.Homoglyphs)...)
		case Hyphenation:
			results = append(results, hyphenation.GetHyphenationPatterns(base)...)
		case Bitsquatting:
			results = append(results, bitsquatting.GetBitsquattingPatterns(base)...)
		case VowelSwap:
			results = append(results, vowelswap.GetVowelSwapPatterns(base)...)
		case IDNHomoglyph:
			results = append(results, idnhomoglyph.GetIDNHomoglyphPatterns(base)...)
		}
	}
	return results
}

// Assemble returns the candidate domains of name: every base pattern joined to the
// original TLD, then to the other TLDs. The domain itself is never a candidate.
func Assemble(name model.DomainName, opts Options) []string {
	candidates := []string{}
	for _, p := range GetBasePatterns(name.Base, opts) {
		if p == "" {
			continue
		}
		candidates = append(candidates, p+name.TLD)
		candidates = append(candidates, tldswap.GetTLDPatterns(p, name.TLD, opts.TLDs)...)
	}
	return helper.RemoveItem(helper.RemoveDuplicate(candidates), name.String())
}
