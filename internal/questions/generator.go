package questions

import (
	"fmt"
	"math/rand"
)

// Span is an inclusive operand range.
type Span struct {
	Min, Max int
}

// roll returns a uniform value in [Min, Max].
func (s Span) roll(rng *rand.Rand) int {
	if s.Max <= s.Min {
		return s.Min
	}
	return s.Min + rng.Intn(s.Max-s.Min+1)
}

// GenOptions controls question generation. Spans are operand ranges per
// category; for division the span bounds both divisor and quotient so every
// generated division is exact.
type GenOptions struct {
	Categories []Category
	AddSpan    Span
	SubSpan    Span
	MulSpan    Span
	DivSpan    Span
	Difficulty string
}

// Generate builds a batch of n questions drawn uniformly from the enabled
// categories. Texts are deduplicated with a bounded number of retries, so a
// small operand space may yield fewer than n questions.
func Generate(n int, opts GenOptions, rng *rand.Rand) []*Question {
	cats := opts.Categories
	if len(cats) == 0 {
		cats = []Category{CategoryAdd, CategorySub}
	}

	out := make([]*Question, 0, n)
	seen := make(map[string]bool, n)
	retries := 0
	const maxRetries = 200

	for len(out) < n && retries < maxRetries {
		q := generateOne(len(out)+1, cats[rng.Intn(len(cats))], opts, rng)
		if seen[q.Text] {
			retries++
			continue
		}
		seen[q.Text] = true
		out = append(out, q)
	}
	return out
}

// generateOne builds a single question for the given category.
func generateOne(id int, cat Category, opts GenOptions, rng *rand.Rand) *Question {
	var a, b, answer int

	switch cat {
	case CategorySub:
		a = opts.SubSpan.roll(rng)
		b = opts.SubSpan.roll(rng)
		if b > a {
			a, b = b, a
		}
		answer = a - b
	case CategoryMul:
		a = opts.MulSpan.roll(rng)
		b = opts.MulSpan.roll(rng)
		answer = a * b
	case CategoryDiv:
		// Build from divisor and quotient so the division is exact.
		b = opts.DivSpan.roll(rng)
		if b < 1 {
			b = 1
		}
		answer = opts.DivSpan.roll(rng)
		if answer < 1 {
			answer = 1
		}
		a = b * answer
	default:
		cat = CategoryAdd
		a = opts.AddSpan.roll(rng)
		b = opts.AddSpan.roll(rng)
		answer = a + b
	}

	return &Question{
		ID:         id,
		Category:   cat,
		Text:       fmt.Sprintf("%d %s %d = ?", a, cat.Symbol(), b),
		Answer:     answer,
		Difficulty: opts.Difficulty,
		A:          a,
		B:          b,
	}
}
