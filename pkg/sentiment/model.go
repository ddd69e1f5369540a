// Package sentiment scores terms on the valence/arousal plane using a
// lexicon of rated English words.
package sentiment

import (
	"errors"
	"math"
	"sync"

	"github.com/basedalex/nlptk/pkg/stem"
)

var ErrTermExists = errors.New("term already exists")

// Entry is one rated lexicon word. Avg and Std hold valence then arousal.
type Entry struct {
	Word string     `json:"word"`
	Stem string     `json:"stem"`
	Avg  [2]float64 `json:"avg"`
	Std  [2]float64 `json:"std"`
}

// Lexicon maps a word to its rating.
type Lexicon map[string]Entry

type Sentiment struct {
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
}

const (
	valence = iota
	arousal
)

// Model answers sentiment queries against a lexicon. It is safe for
// concurrent use.
type Model struct {
	mu    sync.RWMutex
	words map[string]*Entry
	stems map[string]*Entry
}

func NewModel(words Lexicon) *Model {
	m := &Model{}
	m.Reset(words)
	return m
}

// Reset replaces the whole lexicon.
func (m *Model) Reset(words Lexicon) {
	byWord := make(map[string]*Entry, len(words))
	byStem := make(map[string]*Entry, len(words))

	for key, e := range words {
		e := e
		if e.Word == "" {
			e.Word = key
		}
		byWord[key] = &e
		if e.Stem != "" {
			if _, ok := byStem[e.Stem]; !ok {
				byStem[e.Stem] = &e
			}
		}
	}

	m.mu.Lock()
	m.words, m.stems = byWord, byStem
	m.mu.Unlock()
}

// lookup finds term as a word, then as a stem, then by its own stem.
func (m *Model) lookup(term string) (*Entry, bool) {
	if e, ok := m.words[term]; ok {
		return e, true
	}
	if e, ok := m.stems[term]; ok {
		return e, true
	}
	stemmed, err := stem.Stem(term)
	if err != nil {
		return nil, false
	}
	e, ok := m.stems[stemmed]
	return e, ok
}

func (m *Model) TermExists(term string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.lookup(term)
	return ok
}

func (m *Model) raw(term string, dim int) (float64, float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.lookup(term)
	if !ok {
		return 0, 0
	}
	return e.Avg[dim], e.Std[dim]
}

// RawValence returns the mean and standard deviation of the term's valence,
// or zeros for an unknown term.
func (m *Model) RawValence(term string) (float64, float64) {
	return m.raw(term, valence)
}

// RawArousal returns the mean and standard deviation of the term's arousal,
// or zeros for an unknown term.
func (m *Model) RawArousal(term string) (float64, float64) {
	return m.raw(term, arousal)
}

func (m *Model) Valence(term string) float64 {
	v, _ := m.RawValence(term)
	return v
}

func (m *Model) Arousal(term string) float64 {
	a, _ := m.RawArousal(term)
	return a
}

// forTerms averages the known terms, each weighted by the peak of its normal
// distribution, 1/sqrt(2*pi*sd^2). Unknown terms and terms without a positive
// deviation are skipped.
func (m *Model) forTerms(terms []string, dim int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var weighted, total float64
	for _, term := range terms {
		e, ok := m.lookup(term)
		if !ok || !(e.Std[dim] > 0) || math.IsInf(e.Std[dim], 0) {
			continue
		}
		p := 1 / math.Sqrt(2*math.Pi*e.Std[dim]*e.Std[dim])
		weighted += p * e.Avg[dim]
		total += p
	}

	if total == 0 {
		return 0
	}
	return weighted / total
}

func (m *Model) ValenceForTerms(terms []string) float64 {
	return m.forTerms(terms, valence)
}

func (m *Model) ArousalForTerms(terms []string) float64 {
	return m.forTerms(terms, arousal)
}

func (m *Model) SentimentForTerm(term string) Sentiment {
	return Sentiment{Valence: m.Valence(term), Arousal: m.Arousal(term)}
}

func (m *Model) SentimentForTerms(terms []string) Sentiment {
	return Sentiment{Valence: m.ValenceForTerms(terms), Arousal: m.ArousalForTerms(terms)}
}

// TermDescription describes a single term, "unknown" if it is not rated.
func (m *Model) TermDescription(term string) string {
	s := m.SentimentForTerm(term)
	if s.Arousal == 0 {
		return Unknown
	}
	return Description(s.Valence, s.Arousal)
}

// TermsDescription describes the combined sentiment of terms.
func (m *Model) TermsDescription(terms []string) string {
	s := m.SentimentForTerms(terms)
	if s.Arousal == 0 {
		return Unknown
	}
	return Description(s.Valence, s.Arousal)
}

// AddTerm rates a new term with unit standard deviation. It fails with
// ErrTermExists when the term resolves to a rated entry the way TermExists
// does, and with stem.ErrNonASCII when the term cannot be stemmed.
func (m *Model) AddTerm(term string, v, a float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(term); ok {
		return ErrTermExists
	}
	return m.insert(term, v, a)
}

// AddOrReplaceTerm overwrites the means of the entry term resolves to, using
// the same resolution as TermExists and AddTerm, or adds it the way AddTerm
// does.
func (m *Model) AddOrReplaceTerm(term string, v, a float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.lookup(term); ok {
		e.Avg = [2]float64{v, a}
		return nil
	}
	return m.insert(term, v, a)
}

func (m *Model) insert(term string, v, a float64) error {
	stemmed, err := stem.Stem(term)
	if err != nil {
		return err
	}

	e := &Entry{
		Word: term,
		Stem: stemmed,
		Avg:  [2]float64{v, a},
		Std:  [2]float64{1, 1},
	}
	m.words[term] = e
	if _, ok := m.stems[stemmed]; !ok {
		m.stems[stemmed] = e
	}
	return nil
}

// Entry returns a copy of the entry that term resolves to.
func (m *Model) Entry(term string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.lookup(term)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns a snapshot of the lexicon keyed by word.
func (m *Model) Entries() Lexicon {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(Lexicon, len(m.words))
	for key, e := range m.words {
		out[key] = *e
	}
	return out
}

func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.words)
}
