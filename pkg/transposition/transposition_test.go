package transposition_test

import (
	"dommorph/pkg/transposition"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetTranspositionPatterns", func() {
	It("should swap each pair of adjacent letters", func() {
		Expect(transposition.GetTranspositionPatterns("abc")).To(Equal([]string{"bac", "acb"}))
	})
	It("should skip identical adjacent letters", func() {
		Expect(transposition.GetTranspositionPatterns("aab")).To(Equal([]string{"aba"}))
	})
	It("should return nothing for a single letter", func() {
		Expect(transposition.GetTranspositionPatterns("a")).To(BeEmpty())
	})
})
