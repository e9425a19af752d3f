package router

import "errors"

var (
	ErrEmptyLexicon   = errors.New("lexicon has no phrases")
	ErrInvalidPattern = errors.New("invalid lexicon pattern")
)
