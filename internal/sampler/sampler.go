// Package sampler draws practice words from a corpus.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInsufficientCorpus is returned when more words are requested than the corpus holds.
	ErrInsufficientCorpus = errors.New("insufficient corpus")
	// ErrInvalidCount is returned for a non-positive sample size.
	ErrInvalidCount = errors.New("sample size must be positive")
)

// Sampler produces randomized word samples.
type Sampler struct {
	rnd *rand.Rand
}

// New returns a Sampler seeded with the current time.
func New() *Sampler {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Sampler drawing from src.
func NewWithSource(src rand.Source) *Sampler {
	return &Sampler{rnd: rand.New(src)}
}

// Sample returns count words drawn from corpus without replacement, in random order.
// The corpus slice is left untouched.
func (s *Sampler) Sample(corpus []string, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if count > len(corpus) {
		return nil, fmt.Errorf("%w: need %d words, corpus has %d", ErrInsufficientCorpus, count, len(corpus))
	}

	idx := make([]int, len(corpus))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first count positions end up uniformly chosen and ordered.
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		j := i + s.rnd.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		result = append(result, corpus[idx[i]])
	}
	return result, nil
}
