// Package questions provides the arithmetic question model and its suppliers:
// a seeded generator, a reshuffling deck, and YAML question packs. The engine
// consumes questions through the Source interface and never constructs them.
package questions

import "math/rand"

// Category identifies the arithmetic operation of a question.
type Category string

const (
	CategoryAdd Category = "add"
	CategorySub Category = "sub"
	CategoryMul Category = "mul"
	CategoryDiv Category = "div"
)

// Valid returns true for the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAdd, CategorySub, CategoryMul, CategoryDiv:
		return true
	}
	return false
}

// Symbol returns the display operator for the category.
func (c Category) Symbol() string {
	switch c {
	case CategoryAdd:
		return "+"
	case CategorySub:
		return "-"
	case CategoryMul:
		return "×"
	case CategoryDiv:
		return "÷"
	default:
		return "?"
	}
}

// Question is a single arithmetic question. Immutable once created.
// A and B are the operands the question was built from; they let distractor
// generation produce category-plausible wrong answers. Pack questions may
// omit them (zero), in which case distractors fall back to small offsets.
type Question struct {
	ID         int
	Category   Category
	Text       string
	Answer     int
	Difficulty string
	A, B       int
}

// Source supplies questions to the engine one at a time.
// Implementations must avoid serving the same question twice in a row;
// no other contract is assumed. A nil result means the source is empty.
type Source interface {
	Next() *Question
}

// Distractor produces a plausible-but-wrong answer for q.
// Heuristics by category: off-by-small-integer for add/sub, off-by-one-factor
// for mul, off-by-one for div. The result is always non-negative and distinct
// from the correct answer.
func Distractor(q *Question, rng *rand.Rand) int {
	correct := q.Answer
	var wrong int

	switch q.Category {
	case CategoryMul:
		// Perturb one factor: (a±1)·b or a·(b±1).
		factor := q.B
		if rng.Intn(2) == 0 {
			factor = q.A
		}
		if factor == 0 {
			factor = 1 + rng.Intn(3)
		}
		if rng.Intn(2) == 0 {
			wrong = correct + factor
		} else {
			wrong = correct - factor
		}
	case CategoryDiv:
		if rng.Intn(2) == 0 {
			wrong = correct + 1
		} else {
			wrong = correct - 1
		}
	default:
		delta := 1 + rng.Intn(3)
		if rng.Intn(2) == 0 {
			wrong = correct + delta
		} else {
			wrong = correct - delta
		}
	}

	if wrong < 0 {
		wrong = correct + (correct - wrong)
	}
	if wrong == correct {
		wrong = correct + 1
	}
	return wrong
}
