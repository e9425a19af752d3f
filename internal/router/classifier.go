package router

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Classifier attempts to recognise one intent in a raw message.
// Implementations normalize the message themselves and never fail: a message they do not
// recognise yields ok == false.
type Classifier interface {
	Intent() Intent
	Match(message string) (Verdict, bool)
}

var (
	_ Classifier = (*phraseClassifier)(nil)
	_ Classifier = (*createOrderClassifier)(nil)
)

// productIDPattern finds the first run of decimal digits.
var productIDPattern = regexp.MustCompile(`[0-9]+`)

type langPattern struct {
	lang string
	re   *regexp.Regexp
}

// patternSet is an ordered list of compiled patterns. Languages are sorted so the reported
// language is stable across runs.
type patternSet []langPattern

func compilePatternSet(byLang map[string][]string) (patternSet, error) {
	langs := make([]string, 0, len(byLang))
	for lang := range byLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var set patternSet
	for _, lang := range langs {
		for _, p := range byLang[lang] {
			re, err := regexp.Compile(`(?:^|[^\p{L}\p{N}])(?:` + p + `)(?:$|[^\p{L}\p{N}])`)
			if err != nil {
				return nil, fmt.Errorf("%w %q (%s): %v", ErrInvalidPattern, p, lang, err)
			}
			set = append(set, langPattern{lang: lang, re: re})
		}
	}
	return set, nil
}

// find returns the language of the first matching pattern.
func (s patternSet) find(text string) (string, bool) {
	for _, lp := range s {
		if lp.re.MatchString(text) {
			return lp.lang, true
		}
	}
	return "", false
}

// phraseClassifier fires when any phrase matches, or when every co-occurrence group matches.
type phraseClassifier struct {
	intent      Intent
	minLength   int
	phrases     patternSet
	cooccurring []patternSet
}

func newPhraseClassifier(intent Intent, il IntentLexicon) (*phraseClassifier, error) {
	phrases, err := compilePatternSet(il.Phrases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", intent, err)
	}

	groups := make([]patternSet, 0, len(il.Cooccurring))
	for _, g := range il.Cooccurring {
		set, err := compilePatternSet(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", intent, err)
		}
		groups = append(groups, set)
	}

	return &phraseClassifier{
		intent:      intent,
		minLength:   il.MinLength,
		phrases:     phrases,
		cooccurring: groups,
	}, nil
}

func (c *phraseClassifier) Intent() Intent {
	return c.intent
}

func (c *phraseClassifier) Match(message string) (Verdict, bool) {
	text := Normalize(message)
	lang, ok := c.matchNormalized(text)
	if !ok {
		return NoMatch, false
	}
	return Verdict{Intent: c.intent, Language: lang}, true
}

func (c *phraseClassifier) matchNormalized(text string) (string, bool) {
	if text == "" || utf8.RuneCountInString(text) < c.minLength {
		return "", false
	}

	if lang, ok := c.phrases.find(text); ok {
		return lang, true
	}

	if len(c.cooccurring) == 0 {
		return "", false
	}
	var first string
	for i, group := range c.cooccurring {
		lang, ok := group.find(text)
		if !ok {
			return "", false
		}
		if i == 0 {
			first = lang
		}
	}
	return first, true
}

// createOrderClassifier adds product identifier extraction on top of the verb cues.
type createOrderClassifier struct {
	cues *phraseClassifier
}

func newCreateOrderClassifier(il IntentLexicon) (*createOrderClassifier, error) {
	cues, err := newPhraseClassifier(IntentCreateOrder, il)
	if err != nil {
		return nil, err
	}
	return &createOrderClassifier{cues: cues}, nil
}

func (c *createOrderClassifier) Intent() Intent {
	return IntentCreateOrder
}

func (c *createOrderClassifier) Match(message string) (Verdict, bool) {
	text := Normalize(message)
	lang, ok := c.cues.matchNormalized(text)
	if !ok {
		return NoMatch, false
	}
	return Verdict{
		Intent:    IntentCreateOrder,
		ProductID: ExtractProductID(text),
		Language:  lang,
	}, true
}

// ExtractProductID returns the first run of decimal digits in text when it lies within
// [MinProductID, MaxProductID], otherwise 0. Later numbers are never considered.
func ExtractProductID(text string) int {
	run := productIDPattern.FindString(text)
	if run == "" {
		return 0
	}

	digits := strings.TrimLeft(run, "0")
	if digits == "" || len(digits) > len(strconv.Itoa(MaxProductID)) {
		return 0
	}

	id, err := strconv.Atoi(digits)
	if err != nil || id < MinProductID || id > MaxProductID {
		return 0
	}
	return id
}
