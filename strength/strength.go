package strength

import (
	"math"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/pwscore/pwscore/strength/criteria"
)

// SpecialChars is the set of symbols counted as special characters,
// both for the special-character criterion and for the entropy charset.
const SpecialChars = `!@#$%^&*()_+-=[]{}|;':",./<>?`

const DefaultMinLength = 8

const classWeight = 17.5

type Label string

const (
	Weak       Label = "Weak"
	Medium     Label = "Medium"
	Strong     Label = "Strong"
	VeryStrong Label = "Very Strong"
)

// LabelFor maps a score onto its strength tier.
func LabelFor(score int) Label {
	switch {
	case score >= 90:
		return VeryStrong
	case score >= 70:
		return Strong
	case score >= 40:
		return Medium
	default:
		return Weak
	}
}

// Result is everything the evaluator knows about one password.
// EffectiveEntropyBits is a secondary estimate that discounts repeated
// characters; it is shown for comparison and never affects the score.
type Result struct {
	Length               int      `json:"length"`
	Score                int      `json:"score"`
	Label                Label    `json:"strength_label"`
	EntropyBits          float64  `json:"entropy_bits"`
	EffectiveEntropyBits float64  `json:"effective_entropy_bits"`
	CrackTime            string   `json:"estimated_crack_time"`
	Feedback             []string `json:"feedback"`
}

type Evaluator interface {
	Evaluate(lager.Logger, string) Result
}

type evaluator struct {
	minLength int
	checks    []criteria.Criterion
}

// NewEvaluator builds an evaluator with the given minimum-length
// criterion. Criterion order is fixed: length, uppercase, lowercase,
// digit, special. Feedback follows the same order.
func NewEvaluator(minLength int) Evaluator {
	return &evaluator{
		minLength: minLength,
		checks: []criteria.Criterion{
			criteria.MinLength(minLength),
			criteria.Uppercase(),
			criteria.Lowercase(),
			criteria.Digit(),
			criteria.Special(SpecialChars),
		},
	}
}

func NewDefaultEvaluator() Evaluator {
	return NewEvaluator(DefaultMinLength)
}

func (e *evaluator) Evaluate(logger lager.Logger, password string) Result {
	length := utf8.RuneCountInString(password)

	logger = logger.Session("evaluate", lager.Data{"length": length})
	logger.Debug("starting")

	met := make([]bool, len(e.checks))
	feedback := []string{}

	for i, check := range e.checks {
		met[i] = check.Met(password)
		if !met[i] {
			feedback = append(feedback, check.Suggestion())
		}
	}

	score := e.score(length, met)
	entropy := e.entropy(length, met)

	result := Result{
		Length:               length,
		Score:                score,
		Label:                LabelFor(score),
		EntropyBits:          entropy,
		EffectiveEntropyBits: passwordvalidator.GetEntropy(password),
		CrackTime:            EstimatedCrackTime(entropy),
		Feedback:             feedback,
	}

	logger.Debug("done", lager.Data{"score": result.Score, "label": result.Label})

	return result
}

// met[0] is the length criterion, met[1:] are the four character
// classes in fixed order: uppercase, lowercase, digit, special.
func (e *evaluator) score(length int, met []bool) int {
	var score float64

	switch {
	case length >= e.minLength+4:
		score = 30
	case length >= e.minLength:
		score = 20
	case length > 0 && length >= e.minLength-2:
		score = 10
	}

	for _, hasClass := range met[1:] {
		if hasClass {
			score += classWeight
		}
	}

	score = math.Floor(score)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return int(score)
}

// entropy is length times log2 of the summed sizes of the character
// classes actually present. Zero when nothing is present.
func (e *evaluator) entropy(length int, met []bool) float64 {
	if length == 0 {
		return 0
	}

	var charset int
	if met[1] {
		charset += 26
	}
	if met[2] {
		charset += 26
	}
	if met[3] {
		charset += 10
	}
	if met[4] {
		charset += len(SpecialChars)
	}

	if charset == 0 {
		return 0
	}

	return float64(length) * math.Log2(float64(charset))
}
