package questions

import "math/rand"

// Deck serves questions in shuffled order and reshuffles once exhausted.
// The question served immediately before a reshuffle never opens the next
// round, so callers never see the same question twice in a row.
type Deck struct {
	questions []*Question
	order     []int
	pos       int
	last      *Question
	rng       *rand.Rand
}

var _ Source = (*Deck)(nil)

// NewDeck creates a deck over the given questions using the provided RNG.
// The deck owns no questions; callers must not mutate them afterwards.
func NewDeck(qs []*Question, rng *rand.Rand) *Deck {
	d := &Deck{
		questions: qs,
		order:     make([]int, len(qs)),
		rng:       rng,
	}
	for i := range d.order {
		d.order[i] = i
	}
	d.shuffle()
	return d
}

// Len returns the number of questions in the deck.
func (d *Deck) Len() int {
	return len(d.questions)
}

// Next returns the next question, reshuffling when the deck is exhausted.
// Returns nil for an empty deck.
func (d *Deck) Next() *Question {
	if len(d.questions) == 0 {
		return nil
	}

	if d.pos >= len(d.order) {
		d.shuffle()
	}

	q := d.questions[d.order[d.pos]]
	d.pos++
	d.last = q
	return q
}

// shuffle reorders the deck and guards against an immediate repeat of the
// last-served question at the seam.
func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.order), func(i, j int) {
		d.order[i], d.order[j] = d.order[j], d.order[i]
	})
	d.pos = 0

	if len(d.order) > 1 && d.last != nil && d.questions[d.order[0]] == d.last {
		swap := 1 + d.rng.Intn(len(d.order)-1)
		d.order[0], d.order[swap] = d.order[swap], d.order[0]
	}
}
