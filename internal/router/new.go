package router

import (
	"context"
	"fmt"

	"omnixius-ai/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, message string) Verdict
}

// KeywordRouter runs an ordered chain of classifiers; the first one that accepts wins.
type KeywordRouter struct {
	classifiers []Classifier
	l           log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New compiles lex into the classifier chain.
// Order is MyOrders, CreateOrder, ConversationsSummary: "my orders" must never be read as a
// create-order command.
func New(lex Lexicon, l log.Logger) (*KeywordRouter, error) {
	myOrders, err := newPhraseClassifier(IntentMyOrders, lex.MyOrders)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixNew, err)
	}
	createOrder, err := newCreateOrderClassifier(lex.CreateOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixNew, err)
	}
	conversations, err := newPhraseClassifier(IntentConversationsSummary, lex.ConversationsSummary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixNew, err)
	}

	return NewWithClassifiers(l, myOrders, createOrder, conversations), nil
}

// NewWithClassifiers builds a router over an explicit chain, evaluated in the given order.
func NewWithClassifiers(l log.Logger, classifiers ...Classifier) *KeywordRouter {
	return &KeywordRouter{
		classifiers: classifiers,
		l:           l,
	}
}

// Intents lists the chain in evaluation order.
func (r *KeywordRouter) Intents() []Intent {
	out := make([]Intent, len(r.classifiers))
	for i, c := range r.classifiers {
		out[i] = c.Intent()
	}
	return out
}
