package strength_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	pwlog "github.com/pwscore/pwscore/log"
	"github.com/pwscore/pwscore/strength"
)

var _ = Describe("Evaluator", func() {
	var evaluator strength.Evaluator

	logger := pwlog.NewNullLogger()

	BeforeEach(func() {
		evaluator = strength.NewDefaultEvaluator()
	})

	It("keeps every score within [0, 100]", func() {
		passwords := []string{
			"",
			"a",
			"abc",
			"password",
			"PASSWORD",
			"12345678",
			"!!!!!!!!",
			"Str0ng!Passw0rd",
			"aB3!aB3!aB3!aB3!aB3!aB3!aB3!aB3!",
			"日本語のパスワード",
		}

		for _, password := range passwords {
			result := evaluator.Evaluate(logger, password)
			Expect(result.Score).To(BeNumerically(">=", 0))
			Expect(result.Score).To(BeNumerically("<=", 100))
		}
	})

	It("always derives the label from the score thresholds", func() {
		passwords := []string{"", "pass", "password", "Password1", "Str0ng!Passw0rd"}

		for _, password := range passwords {
			result := evaluator.Evaluate(logger, password)
			Expect(result.Label).To(Equal(strength.LabelFor(result.Score)))
		}
	})

	Context("when the password is empty", func() {
		It("returns the weakest possible result instead of failing", func() {
			result := evaluator.Evaluate(logger, "")

			Expect(result.Score).To(BeNumerically("<", 10))
			Expect(result.Label).To(Equal(strength.Weak))
			Expect(result.EntropyBits).To(Equal(0.0))
			Expect(result.CrackTime).To(Equal("instantly"))
		})

		It("suggests all five criteria in fixed order", func() {
			result := evaluator.Evaluate(logger, "")

			Expect(result.Feedback).To(Equal([]string{
				"Increase length to at least 8 characters",
				"Add at least one uppercase letter",
				"Add at least one lowercase letter",
				"Add at least one digit",
				"Add at least one special character",
			}))
		})
	})

	Context("when the password is eight lowercase letters", func() {
		It("does not rate it Strong", func() {
			result := evaluator.Evaluate(logger, "password")

			Expect(result.Label).To(Or(Equal(strength.Weak), Equal(strength.Medium)))
			Expect(result.Score).To(BeNumerically("<", 70))
		})

		It("suggests the three missing character classes", func() {
			result := evaluator.Evaluate(logger, "password")

			Expect(result.Feedback).To(Equal([]string{
				"Add at least one uppercase letter",
				"Add at least one digit",
				"Add at least one special character",
			}))
		})
	})

	Context("when the password satisfies every criterion at length 15", func() {
		It("rates it Very Strong with no feedback", func() {
			result := evaluator.Evaluate(logger, "Str0ng!Passw0rd")

			Expect(result.Score).To(BeNumerically(">=", 90))
			Expect(result.Label).To(Equal(strength.VeryStrong))
			Expect(result.Feedback).To(BeEmpty())
		})

		It("sums the charset sizes of every class present", func() {
			result := evaluator.Evaluate(logger, "Str0ng!Passw0rd")

			expected := 15 * math.Log2(26+26+10+float64(len(strength.SpecialChars)))
			Expect(result.EntropyBits).To(BeNumerically("~", expected, 1e-9))
		})
	})

	It("scores an extra satisfied criterion strictly higher", func() {
		base := evaluator.Evaluate(logger, "aaaaaaaaaaaa")
		withUpper := evaluator.Evaluate(logger, "Aaaaaaaaaaaa")
		withDigit := evaluator.Evaluate(logger, "aaaaaaaaaaa1")
		withSpecial := evaluator.Evaluate(logger, "aaaaaaaaaaa!")

		Expect(withUpper.Score).To(BeNumerically(">", base.Score))
		Expect(withDigit.Score).To(BeNumerically(">", base.Score))
		Expect(withSpecial.Score).To(BeNumerically(">", base.Score))
	})

	It("never scores a longer password lower when composition is identical", func() {
		short := evaluator.Evaluate(logger, "abcdef")
		medium := evaluator.Evaluate(logger, "abcdefgh")
		long := evaluator.Evaluate(logger, "abcdefghijkl")

		Expect(medium.Score).To(BeNumerically(">=", short.Score))
		Expect(long.Score).To(BeNumerically(">=", medium.Score))
	})

	It("grows entropy with length for identical composition", func() {
		short := evaluator.Evaluate(logger, "abcd")
		long := evaluator.Evaluate(logger, "abcdefgh")

		Expect(long.EntropyBits).To(BeNumerically(">", short.EntropyBits))
	})

	It("is deterministic across calls", func() {
		first := evaluator.Evaluate(logger, "Str0ng!Passw0rd")
		second := evaluator.Evaluate(logger, "Str0ng!Passw0rd")

		Expect(first).To(Equal(second))
	})

	It("ignores characters outside every class for the charset", func() {
		result := evaluator.Evaluate(logger, "        ")

		Expect(result.EntropyBits).To(Equal(0.0))
		Expect(result.Label).To(Equal(strength.Weak))
	})

	Context("with an overridden minimum length", func() {
		BeforeEach(func() {
			evaluator = strength.NewEvaluator(12)
		})

		It("suggests the configured length", func() {
			result := evaluator.Evaluate(logger, "password")

			Expect(result.Feedback).To(ContainElement("Increase length to at least 12 characters"))
		})
	})
})

var _ = Describe("LabelFor", func() {
	It("maps the threshold table exactly", func() {
		Expect(strength.LabelFor(0)).To(Equal(strength.Weak))
		Expect(strength.LabelFor(39)).To(Equal(strength.Weak))
		Expect(strength.LabelFor(40)).To(Equal(strength.Medium))
		Expect(strength.LabelFor(69)).To(Equal(strength.Medium))
		Expect(strength.LabelFor(70)).To(Equal(strength.Strong))
		Expect(strength.LabelFor(89)).To(Equal(strength.Strong))
		Expect(strength.LabelFor(90)).To(Equal(strength.VeryStrong))
		Expect(strength.LabelFor(100)).To(Equal(strength.VeryStrong))
	})
})

var _ = Describe("EstimatedCrackTime", func() {
	It("reports zero entropy as instant", func() {
		Expect(strength.EstimatedCrackTime(0)).To(Equal("instantly"))
	})

	It("reports tiny entropy in seconds", func() {
		Expect(strength.EstimatedCrackTime(10)).To(ContainSubstring("seconds"))
	})

	It("reports strong entropy in years", func() {
		Expect(strength.EstimatedCrackTime(64)).To(ContainSubstring("years"))
	})

	It("caps absurd entropy instead of overflowing", func() {
		Expect(strength.EstimatedCrackTime(4096)).To(Equal("centuries"))
	})
})
