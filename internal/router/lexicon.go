package router

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Lexicon holds the per-language phrase tables of every intent.
type Lexicon struct {
	MyOrders             IntentLexicon `yaml:"my_orders"`
	CreateOrder          IntentLexicon `yaml:"create_order"`
	ConversationsSummary IntentLexicon `yaml:"conversations_summary"`
}

// IntentLexicon is the phrase table of one intent, keyed by language code.
type IntentLexicon struct {
	MinLength   int                   `yaml:"min_length"`
	Phrases     map[string][]string   `yaml:"phrases"`
	Cooccurring []map[string][]string `yaml:"cooccurring"`
}

// DefaultLexicon returns the lexicon compiled into the binary.
func DefaultLexicon() (Lexicon, error) {
	return ParseLexicon(defaultLexiconYAML)
}

// LoadLexicon reads a lexicon override from path.
func LoadLexicon(path string) (Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return ParseLexicon(raw)
}

// ParseLexicon decodes a YAML lexicon and checks every intent has something to match on.
func ParseLexicon(raw []byte) (Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(raw, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("decode lexicon: %w", err)
	}

	for name, il := range map[string]IntentLexicon{
		"my_orders":             lex.MyOrders,
		"create_order":          lex.CreateOrder,
		"conversations_summary": lex.ConversationsSummary,
	} {
		if countPatterns(il.Phrases) == 0 && len(il.Cooccurring) == 0 {
			return Lexicon{}, fmt.Errorf("%s: %w", name, ErrEmptyLexicon)
		}
	}

	return lex, nil
}

func countPatterns(byLang map[string][]string) int {
	n := 0
	for _, patterns := range byLang {
		n += len(patterns)
	}
	return n
}
