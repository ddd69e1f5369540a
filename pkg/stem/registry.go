package stem

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/reiver/go-porterstemmer"
)

var ErrUnknownAlgorithm = errors.New("stemmer not supported")

type Stemmer interface {
	Stem(word string) (string, error)
}

// Func adapts a plain function to the Stemmer interface.
type Func func(word string) (string, error)

func (f Func) Stem(word string) (string, error) {
	return f(word)
}

const DefaultAlgorithm = "porter"

var algorithms = map[string]Func{
	"porter":   Stem,
	"snowball": guarded(snowballEnglish),
	"classic":  guarded(porterstemmer.StemString),
}

// New returns the stemmer registered under name. An empty name selects the
// default algorithm.
func New(name string) (Stemmer, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	f, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return f, nil
}

// Algorithms lists the registered algorithm names.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func snowballEnglish(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

// guarded gives third-party stemmers the same contract as Stem: non-ASCII
// words are rejected and words of two bytes or fewer pass through untouched.
// A stemmer that panics on a word leaves it lowercased but unstemmed.
func guarded(f func(string) string) Func {
	return func(word string) (stemmed string, err error) {
		if !isASCII(word) {
			return "", fmt.Errorf("%w: %q", ErrNonASCII, word)
		}
		if len(word) <= 2 {
			return word, nil
		}

		lower := strings.ToLower(word)
		defer func() {
			if r := recover(); r != nil {
				stemmed, err = lower, nil
			}
		}()
		return f(lower), nil
	}
}
