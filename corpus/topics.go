package corpus

import (
	"fmt"
	"maps"
	"math"
	"slices"

	log "github.com/golang/glog"

	"github.com/bobonovski/gotopic/sstable"
	"github.com/bobonovski/gotopic/topic"
)

// AllocTopics replaces the topics of the corpus with k new topics whose
// idents are their offsets 0..k-1. The new topics have no model yet.
func (this *Corpus) AllocTopics(k uint32) {
	this.topics = make([]*topic.Topic, k)
	for i := uint32(0); i < k; i += 1 {
		this.topics[i] = topic.New(i)
	}
}

// Topics returns the topics ordered by ident.
func (this *Corpus) Topics() []*topic.Topic {
	return this.topics
}

// Topic returns the topic at offset k.
func (this *Corpus) Topic(k uint32) (*topic.Topic, error) {
	if int(k) >= len(this.topics) {
		return nil, fmt.Errorf("topic %d of %d: %w", k, len(this.topics), ErrTopicOutOfRange)
	}
	return this.topics[k], nil
}

// SetPhi hands the word-topic weights estimated elsewhere to the topics:
// column k becomes the model of topic k. Every column is checked before any
// topic is touched, so a rejected matrix leaves all topics as they were.
func (this *Corpus) SetPhi(phi *sstable.Matrix) error {
	if len(this.topics) == 0 {
		return ErrNoTopics
	}
	r, c := phi.Shape()
	if r != this.VocabSize || int(c) != len(this.topics) {
		return fmt.Errorf("phi is %dx%d, want %dx%d: %w",
			r, c, this.VocabSize, len(this.topics), ErrShapeMismatch)
	}

	// validate on scratch topics first
	cols := make([][]float64, c)
	for k := uint32(0); k < c; k += 1 {
		cols[k] = phi.Col(k)
		if err := topic.New(k).SetModel(cols[k]); err != nil {
			return err
		}
	}
	for k, col := range cols {
		if err := this.topics[k].SetModel(col); err != nil {
			return err
		}
	}
	log.V(1).Infof("set models of %d topics over %d words", c, r)
	return nil
}

// compute the joint log likelihood of the corpus given the document-topic
// mixture theta, one row per document and one column per topic
func (this *Corpus) Likelihood(theta *sstable.Matrix) (float64, error) {
	if len(this.topics) == 0 {
		return 0, ErrNoTopics
	}
	r, c := theta.Shape()
	if r < this.DocNum || int(c) != len(this.topics) {
		return 0, fmt.Errorf("theta is %dx%d, want at least %d rows and %d columns: %w",
			r, c, this.DocNum, len(this.topics), ErrShapeMismatch)
	}

	// fixed document order keeps the floating point sum reproducible
	sum := float64(0.0)
	for _, doc := range slices.Sorted(maps.Keys(this.Docs)) {
		wcs := this.Docs[doc]
		if doc >= r {
			return 0, fmt.Errorf("document %d outside theta with %d rows: %w",
				doc, r, ErrShapeMismatch)
		}
		for _, w := range ExpandWords(wcs) {
			topicSum := float64(0.0)
			for k, tp := range this.topics {
				p, err := tp.ProbWord(w)
				if err != nil {
					return 0, err
				}
				topicSum += p * theta.Get(doc, uint32(k))
			}
			sum += math.Log(topicSum)
		}
	}

	return sum, nil
}
