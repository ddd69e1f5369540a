// Package lexicon reads and writes sentiment lexicons as JSON files.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/basedalex/nlptk/pkg/sentiment"
	"github.com/basedalex/nlptk/pkg/stem"
)

// Read loads a lexicon keyed by word. Entries without a stem are stemmed;
// entries whose word cannot be stemmed keep an empty stem and are only
// reachable by word.
func Read(path string) (sentiment.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	lex := make(sentiment.Lexicon)
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("lexicon: %s: %w", filepath.Base(path), err)
	}

	for key, e := range lex {
		if e.Word == "" {
			e.Word = key
		}
		if e.Stem == "" {
			if stemmed, err := stem.Stem(e.Word); err == nil {
				e.Stem = stemmed
			}
		}
		lex[key] = e
	}

	return lex, nil
}

// Write stores lex as indented JSON, creating parent directories as needed.
func Write(path string, lex sentiment.Lexicon) error {
	data, err := json.MarshalIndent(lex, "", " ")
	if err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}
	return nil
}
