package typo_test

import (
	"dommorph/pkg/typo"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetTypoPatterns", func() {
	name := "example"
	patterns := typo.GetTypoPatterns(name)

	It("should contain omission, repetition and transposition patterns", func() {
		Expect(patterns).To(ContainElements("exmple", "eexample", "xeample"))
	})
	It("should return at most 3n patterns", func() {
		Expect(len(patterns)).To(BeNumerically("<=", 3*len(name)))
		Expect(patterns).To(HaveLen(20))
	})
	It("should change the length by one letter at most", func() {
		for _, p := range patterns {
			Expect(len(p)).To(BeNumerically("~", len(name), 1))
		}
	})
	It("should not contain duplicates nor the name", func() {
		seen := map[string]bool{}
		for _, p := range patterns {
			Expect(seen).NotTo(HaveKey(p))
			seen[p] = true
		}
		Expect(patterns).NotTo(ContainElement(name))
	})
	It("should not return the name for doubled letters", func() {
		Expect(typo.GetTypoPatterns("google")).NotTo(ContainElement("google"))
	})
})
