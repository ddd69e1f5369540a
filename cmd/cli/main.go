package main

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/basedalex/nlptk/pkg/lexicon"
	"github.com/basedalex/nlptk/pkg/sentiment"
	"github.com/basedalex/nlptk/pkg/stem"
	"github.com/basedalex/nlptk/pkg/words"
)

func main() {
	var (
		str         string
		algo        string
		lexiconPath string
		score       bool
	)

	flag.StringVar(&str, "s", "", "input a string to be stemmed")
	flag.StringVar(&algo, "algo", stem.DefaultAlgorithm, "stemming algorithm: "+strings.Join(stem.Algorithms(), ", "))
	flag.BoolVar(&score, "sentiment", false, "describe the sentiment of the string")
	flag.StringVar(&lexiconPath, "lexicon", "", "path to a JSON sentiment lexicon")
	flag.Parse()

	if len(str) == 0 {
		log.Fatalln("Please provide a string to be stemmed")
	}

	stemmer, err := stem.New(algo)
	if err != nil {
		log.Fatalln(err)
	}

	var tokens []string
	for _, sentence := range words.Sentences(str) {
		tokens = append(tokens, words.Tokens(sentence)...)
	}

	stems := make([]string, 0, len(tokens))
	for _, token := range tokens {
		stemmed, err := stemmer.Stem(token)
		if err != nil {
			log.Warn(err)
			stemmed = token
		}
		stems = append(stems, stemmed)
	}
	fmt.Println(strings.Join(stems, " "))

	if !score {
		return
	}

	if lexiconPath == "" {
		log.Fatalln("Please provide a lexicon to score sentiment with")
	}

	lex, err := lexicon.Read(lexiconPath)
	if err != nil {
		log.Fatalln(err)
	}

	model := sentiment.NewModel(lex)
	s := model.SentimentForTerms(tokens)
	fmt.Printf("%s (valence %.2f, arousal %.2f)\n", model.TermsDescription(tokens), s.Valence, s.Arousal)
}
