// Package topic holds the word emission distribution of a single topic.
package topic

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
)

// snapshot is an accepted model together with its normalizer.
// It is never mutated after being published.
type snapshot struct {
	model []float64
	mult  float64 // 1 / sum(model)
}

// Topic wraps the parameter vector of the multinomial from which the
// words of one topic are drawn. The index into the vector is the word id.
// Values are proportional to P(topic, word); NormModel gives P(word|topic).
//
// A Topic is created without a model. Every accessor except Ident
// returns ErrUninitializedModel until SetModel succeeds once.
type Topic struct {
	ident uint32
	state atomic.Pointer[snapshot]
}

// New creates a topic at offset ident of the owning corpus.
func New(ident uint32) *Topic {
	return &Topic{ident: ident}
}

// Ident returns the offset of the topic in its corpus.
func (t *Topic) Ident() uint32 {
	return t.ident
}

// Ready reports whether a model has been set.
func (t *Topic) Ready() bool {
	return t.state.Load() != nil
}

// SetModel replaces the parameter vector. The vector is copied, so later
// changes to model do not affect the topic. An empty vector, a negative or
// non-finite entry, or a non-positive sum is rejected with ErrInvalidModel
// and the previous model is kept.
func (t *Topic) SetModel(model []float64) error {
	if len(model) == 0 {
		return fmt.Errorf("topic %d: empty vector: %w", t.ident, ErrInvalidModel)
	}
	for i, v := range model {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("topic %d: word %d has weight %v: %w",
				t.ident, i, v, ErrInvalidModel)
		}
	}
	sum := floats.Sum(model)
	if !(sum > 0) || math.IsInf(sum, 0) {
		return fmt.Errorf("topic %d: vector sum %v: %w", t.ident, sum, ErrInvalidModel)
	}
	// subnormal sums overflow the normalizer
	mult := 1.0 / sum
	if math.IsInf(mult, 0) {
		return fmt.Errorf("topic %d: vector sum %v has no finite normalizer: %w",
			t.ident, sum, ErrInvalidModel)
	}

	s := &snapshot{
		model: make([]float64, len(model)),
		mult:  mult,
	}
	copy(s.model, model)
	t.state.Store(s)
	return nil
}

func (t *Topic) load() (*snapshot, error) {
	s := t.state.Load()
	if s == nil {
		return nil, fmt.Errorf("topic %d: %w", t.ident, ErrUninitializedModel)
	}
	return s, nil
}

// Model returns a copy of the unnormalized parameter vector.
func (t *Topic) Model() ([]float64, error) {
	s, err := t.load()
	if err != nil {
		return nil, err
	}
	model := make([]float64, len(s.model))
	copy(model, s.model)
	return model, nil
}

// Normalizer returns the multiplier turning the model into P(word|topic).
func (t *Topic) Normalizer() (float64, error) {
	s, err := t.load()
	if err != nil {
		return 0, err
	}
	return s.mult, nil
}

// VocabSize returns the length of the model.
func (t *Topic) VocabSize() (int, error) {
	s, err := t.load()
	if err != nil {
		return 0, err
	}
	return len(s.model), nil
}

// NormModel returns the model normalized to the multinomial P(word|topic).
func (t *Topic) NormModel() ([]float64, error) {
	s, err := t.load()
	if err != nil {
		return nil, err
	}
	norm := make([]float64, len(s.model))
	floats.ScaleTo(norm, s.mult, s.model)
	return norm, nil
}

// ProbWord returns the probability of the topic emitting word wordId.
func (t *Topic) ProbWord(wordId uint32) (float64, error) {
	s, err := t.load()
	if err != nil {
		return 0, err
	}
	if int(wordId) >= len(s.model) {
		return 0, fmt.Errorf("topic %d: word %d, vocabulary size %d: %w",
			t.ident, wordId, len(s.model), ErrIndexOutOfRange)
	}
	return s.model[wordId] * s.mult, nil
}

// TopWords returns every word id ordered by descending probability.
// Ties keep ascending word id order.
func (t *Topic) TopWords() ([]uint32, error) {
	s, err := t.load()
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(s.model))
	for i := range words {
		words[i] = uint32(i)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return s.model[words[i]] > s.model[words[j]]
	})
	return words, nil
}

// TopN returns the first n entries of TopWords. If n <= 0 or exceeds the
// vocabulary size all words are returned.
func (t *Topic) TopN(n int) ([]uint32, error) {
	words, err := t.TopWords()
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(words) {
		words = words[:n]
	}
	return words, nil
}
