package questions

import (
	"math/rand"
	"testing"
)

func testQuestions(n int) []*Question {
	qs := make([]*Question, n)
	for i := range qs {
		qs[i] = &Question{ID: i + 1, Category: CategoryAdd, Answer: i, Text: string(rune('A' + i))}
	}
	return qs
}

func TestDeckServesEveryQuestionPerCycle(t *testing.T) {
	qs := testQuestions(6)
	d := NewDeck(qs, rand.New(rand.NewSource(42)))

	seen := make(map[int]int)
	for i := 0; i < 6; i++ {
		q := d.Next()
		if q == nil {
			t.Fatal("Next returned nil on a non-empty deck")
		}
		seen[q.ID]++
	}

	for _, q := range qs {
		if seen[q.ID] != 1 {
			t.Errorf("question %d served %d times in one cycle, expected 1", q.ID, seen[q.ID])
		}
	}
}

func TestDeckNoImmediateRepeat(t *testing.T) {
	qs := testQuestions(4)
	d := NewDeck(qs, rand.New(rand.NewSource(1)))

	var last *Question
	// Enough draws to cross many reshuffle seams.
	for i := 0; i < 400; i++ {
		q := d.Next()
		if q == last {
			t.Fatalf("draw %d repeated the previous question (id %d)", i, q.ID)
		}
		last = q
	}
}

func TestDeckSingleQuestion(t *testing.T) {
	qs := testQuestions(1)
	d := NewDeck(qs, rand.New(rand.NewSource(5)))

	// With one question a repeat is unavoidable; the deck must still serve it.
	for i := 0; i < 5; i++ {
		if q := d.Next(); q == nil || q.ID != 1 {
			t.Fatalf("single-question deck should keep serving question 1, got %v", q)
		}
	}
}

func TestDeckEmpty(t *testing.T) {
	d := NewDeck(nil, rand.New(rand.NewSource(5)))
	if d.Len() != 0 {
		t.Errorf("empty deck Len = %d, expected 0", d.Len())
	}
	if q := d.Next(); q != nil {
		t.Errorf("empty deck should serve nil, got %v", q)
	}
}

func TestDeckDeterministicOrder(t *testing.T) {
	a := NewDeck(testQuestions(8), rand.New(rand.NewSource(99)))
	b := NewDeck(testQuestions(8), rand.New(rand.NewSource(99)))

	for i := 0; i < 40; i++ {
		qa, qb := a.Next(), b.Next()
		if qa.ID != qb.ID {
			t.Fatalf("same seed should serve the same order, diverged at draw %d (%d vs %d)", i, qa.ID, qb.ID)
		}
	}
}
