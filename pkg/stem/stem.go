// Package stem reduces English words to an approximate root with a variant of
// the Porter suffix-stripping algorithm.
package stem

import (
	"errors"
	"fmt"
)

var ErrNonASCII = errors.New("only supports English words with ASCII characters")

// Stem returns the stem of word. Words of two bytes or fewer are returned
// unchanged, casing included; longer words come back lowercased.
func Stem(word string) (string, error) {
	if !isASCII(word) {
		return "", fmt.Errorf("%w: %q", ErrNonASCII, word)
	}
	if len(word) <= 2 {
		return word, nil
	}

	w := newWord(word)
	w.step1ab()
	w.step1c()
	w.step2()
	w.step3()
	w.step4()
	w.step5()

	return string(w.b), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// word is the buffer a single stem is computed in. len(b) is the current
// logical end of the word.
type word struct {
	b []byte
}

func newWord(s string) *word {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return &word{b: b}
}

func (w *word) last() byte {
	return w.b[len(w.b)-1]
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// consonant reports whether b[i] is a consonant. A y is a consonant at the
// start of the word and otherwise the opposite of whatever precedes it, so
// the run of y's ending at i decides the answer by its parity.
func (w *word) consonant(i int) bool {
	ys := 0
	for i >= 0 && w.b[i] == 'y' {
		i--
		ys++
	}
	c := i >= 0 && !isVowel(w.b[i])
	if ys%2 == 1 {
		c = !c
	}
	return c
}

// measure counts the vowel-consonant sequences in b[:boundary]:
//
//	<c><v>       gives 0
//	<c>vc<v>     gives 1
//	<c>vcvc<v>   gives 2
func (w *word) measure(boundary int) int {
	n := 0
	i := 0
	for i < boundary && w.consonant(i) {
		i++
	}
	for i < boundary {
		for i < boundary && !w.consonant(i) {
			i++
		}
		if i >= boundary {
			break
		}
		for i < boundary && w.consonant(i) {
			i++
		}
		n++
	}
	return n
}

func (w *word) hasVowel(boundary int) bool {
	for i := 0; i < boundary; i++ {
		if !w.consonant(i) {
			return true
		}
	}
	return false
}

func (w *word) doubleConsonant(i int) bool {
	if i < 1 || w.b[i] != w.b[i-1] {
		return false
	}
	return w.consonant(i)
}

// cvc reports whether b[i-2:i+1] is consonant-vowel-consonant with the last
// consonant not w, x or y. It decides when to put an e back on short
// stems: cav(e), lov(e), hop(e), crim(e), but snow, box, tray.
func (w *word) cvc(i int) bool {
	if i < 2 || !w.consonant(i) || w.consonant(i-1) || !w.consonant(i-2) {
		return false
	}
	switch w.b[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// ends reports whether the word ends with suffix and, if so, where the stem
// in front of it stops.
func (w *word) ends(suffix string) (int, bool) {
	n := len(w.b)
	if len(suffix) > n {
		return 0, false
	}
	if string(w.b[n-len(suffix):]) != suffix {
		return 0, false
	}
	return n - len(suffix), true
}

func (w *word) setTo(boundary int, s string) {
	w.b = append(w.b[:boundary], s...)
}

func (w *word) replaceIfMeasured(boundary int, s string) {
	if w.measure(boundary) > 0 {
		w.setTo(boundary, s)
	}
}

// replaceFirst tries the rules in order and applies the first whose suffix
// matches, gated on the measure of the stem in front of it.
func (w *word) replaceFirst(rules []rule) {
	for _, r := range rules {
		if j, ok := w.ends(r.suffix); ok {
			w.replaceIfMeasured(j, r.repl)
			return
		}
	}
}

type rule struct {
	suffix string
	repl   string
}
