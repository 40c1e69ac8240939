// Package engine implements the typing test state machine and its live metrics.
package engine

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// DefaultSampleSize is the number of words in one run.
	DefaultSampleSize = 20
	// DefaultDelimiter commits the current word.
	DefaultDelimiter = ' '

	charsPerWord = 5
)

// WordSampler draws the word sequence for a run.
type WordSampler interface {
	Sample(corpus []string, count int) ([]string, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSampleSize sets the number of words per run.
func WithSampleSize(n int) Option {
	return func(e *Engine) {
		e.sampleSize = n
	}
}

// WithClock replaces time.Now as the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithDelimiter sets the rune stripped from the end of a submitted buffer.
func WithDelimiter(r rune) Option {
	return func(e *Engine) {
		e.delimiter = r
	}
}

// Metrics is a snapshot of the live scores.
type Metrics struct {
	WordsTyped   int
	WPM          int
	Accuracy     int
	CorrectWords int
	Attempted    int
}

// Engine owns one typing test run. It is not safe for concurrent use.
type Engine struct {
	corpus     []string
	sampler    WordSampler
	sampleSize int
	delimiter  rune
	now        func() time.Time

	words  []WordSlot
	cursor int
	input  string

	started   bool
	startTime time.Time
	finished  time.Duration

	correctCharacters int
	correctWords      int
	wpm               int
}

// New samples the first run from corpus.
func New(corpus []string, sampler WordSampler, opts ...Option) (*Engine, error) {
	e := &Engine{
		corpus:     corpus,
		sampler:    sampler,
		sampleSize: DefaultSampleSize,
		delimiter:  DefaultDelimiter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset starts a fresh run. If sampling fails the current run is left as it was.
func (e *Engine) Reset() error {
	texts, err := e.sampler.Sample(e.corpus, e.sampleSize)
	if err != nil {
		return fmt.Errorf("failed to sample words: %w", err)
	}
	words := lo.Map(texts, func(text string, _ int) WordSlot {
		return WordSlot{Text: text, Status: Pending}
	})
	if len(words) > 0 {
		words[0].Status = Next
	}

	e.words = words
	e.cursor = 0
	e.input = ""
	e.started = false
	e.startTime = time.Time{}
	e.finished = 0
	e.correctCharacters = 0
	e.correctWords = 0
	e.wpm = 0
	return nil
}

// OnInputChanged records the current contents of the input buffer.
func (e *Engine) OnInputChanged(buffer string) {
	if e.Complete() {
		return
	}
	e.input = buffer
	if buffer != "" && !e.started {
		e.started = true
		e.startTime = e.now()
	}

	slot := &e.words[e.cursor]
	switch {
	case buffer == "":
		slot.Status = Next
	case strings.HasPrefix(slot.Text, buffer):
		slot.Status = TypingCorrectPrefix
	default:
		slot.Status = TypingTypo
	}
}

// OnSubmitWord commits the buffer against the current word and advances the cursor.
func (e *Engine) OnSubmitWord() {
	if !e.started || e.Complete() {
		e.clearInput()
		return
	}
	submitted := strings.TrimSuffix(e.input, string(e.delimiter))
	if submitted == "" {
		e.clearInput()
		return
	}

	slot := &e.words[e.cursor]
	if submitted == slot.Text {
		slot.Status = Correct
		e.correctWords++
	} else {
		slot.Status = Incorrect
	}
	// The target length counts even when mistyped.
	e.correctCharacters += utf8.RuneCountInString(slot.Text)
	e.input = ""
	e.cursor++
	e.updateWPM()

	if e.cursor < len(e.words) {
		e.words[e.cursor].Status = Next
		return
	}
	e.finished = e.now().Sub(e.startTime)
	e.started = false
}

func (e *Engine) clearInput() {
	e.input = ""
	if !e.Complete() {
		e.words[e.cursor].Status = Next
	}
}

// updateWPM floors (chars / 5) per minute using integer nanoseconds.
func (e *Engine) updateWPM() {
	elapsed := e.now().Sub(e.startTime)
	if elapsed <= 0 {
		return
	}
	e.wpm = int(int64(e.correctCharacters) * int64(time.Minute) / (charsPerWord * int64(elapsed)))
}

// Words returns a copy of the word slots.
func (e *Engine) Words() []WordSlot {
	return slices.Clone(e.words)
}

// Cursor is the index of the current word; it equals the word count once the run is complete.
func (e *Engine) Cursor() int {
	return e.cursor
}

// Input returns the buffer for the current word.
func (e *Engine) Input() string {
	return e.input
}

// Started reports whether a run is in progress.
func (e *Engine) Started() bool {
	return e.started
}

// Complete reports whether every word has been submitted.
func (e *Engine) Complete() bool {
	return e.cursor >= len(e.words)
}

// CorrectWords counts exact matches so far.
func (e *Engine) CorrectWords() int {
	return e.correctWords
}

// CorrectCharacters sums the target lengths of all submitted words.
func (e *Engine) CorrectCharacters() int {
	return e.correctCharacters
}

// Accuracy is the percentage of submitted words typed exactly.
func (e *Engine) Accuracy() int {
	return 100 * e.correctWords / max(e.cursor, 1)
}

// WordsPerMinute returns the WPM computed at the last submit.
func (e *Engine) WordsPerMinute() int {
	return e.wpm
}

// WordCount converts submitted characters into five-character words.
func (e *Engine) WordCount() int {
	return e.correctCharacters / charsPerWord
}

// Elapsed is the time since the first keystroke of the current run.
// After completion it is the length of the finished run.
func (e *Engine) Elapsed() time.Duration {
	if !e.started {
		return e.finished
	}
	return e.now().Sub(e.startTime)
}

// Metrics returns all scores at once.
func (e *Engine) Metrics() Metrics {
	return Metrics{
		WordsTyped:   e.WordCount(),
		WPM:          e.wpm,
		Accuracy:     e.Accuracy(),
		CorrectWords: e.correctWords,
		Attempted:    e.cursor,
	}
}
