package words

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/basedalex/nlptk/pkg/stem"
)

var (
	quotedEnd   = regexp.MustCompile(`[.!?]"`)
	sentenceEnd = regexp.MustCompile(`[.!?] *`)
	punctuation = regexp.MustCompile("[!\"#$%&'()*+,\\-./:;<=>?@\\[\\\\\\]^_`{|}~]+")
	nonLetters  = regexp.MustCompile("[^a-zA-Z]+")
)

// Sentences splits a document on sentence-ending punctuation.
func Sentences(document string) []string {
	document = quotedEnd.ReplaceAllString(document, `"`)

	sentences := make([]string, 0)
	for _, s := range sentenceEnd.Split(document, -1) {
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Tokens strips punctuation from a sentence and splits it on spaces.
func Tokens(sentence string) []string {
	sentence = punctuation.ReplaceAllString(sentence, "")

	tokens := make([]string, 0)
	for _, t := range strings.Split(sentence, " ") {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func RemoveStopWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if english.IsStopWord(strings.ToLower(t)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func TermFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}

func TermFrequenciesFromSentence(sentence string) map[string]float64 {
	return TermFrequencies(Tokens(sentence))
}

// TermFrequenciesFromSentences counts terms per document. Every returned map
// holds the vocabulary of all documents, with zero for absent terms, so the
// maps line up row for row when read in sorted key order.
func TermFrequenciesFromSentences(documents []string) []map[string]float64 {
	counts := make([]map[string]float64, len(documents))
	vocabulary := make(map[string]struct{})
	for i, doc := range documents {
		counts[i] = TermFrequenciesFromSentence(doc)
		for term := range counts[i] {
			vocabulary[term] = struct{}{}
		}
	}

	for _, tf := range counts {
		for term := range vocabulary {
			if _, ok := tf[term]; !ok {
				tf[term] = 0
			}
		}
	}
	return counts
}

// StemmedTermFrequencies counts the stems of tokens. A token the stemmer
// rejects is counted under its own text.
func StemmedTermFrequencies(tokens []string, s stem.Stemmer) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		stemmed, err := s.Stem(t)
		if err != nil {
			stemmed = t
		}
		tf[stemmed]++
	}
	return tf
}

// SortedTerms returns the keys of tf in ascending order.
func SortedTerms(tf map[string]float64) []string {
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Normalize turns free text into a list of distinct keyword stems: letters
// only, stop words dropped, first occurrence order kept.
func Normalize(str string, s stem.Stemmer) ([]string, error) {
	if len(str) == 0 {
		return nil, errors.New("please provide a string to be stemmed")
	}

	seen := make(map[string]struct{})
	var result []string

	for _, word := range strings.Fields(nonLetters.ReplaceAllString(str, " ")) {
		word = strings.ToLower(word)
		if english.IsStopWord(word) {
			continue
		}

		stemmed, err := s.Stem(word)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[stemmed]; ok {
			continue
		}
		seen[stemmed] = struct{}{}
		result = append(result, stemmed)
	}

	if len(result) == 0 {
		return nil, errors.New("result is empty, please provide a better string")
	}

	return result, nil
}
