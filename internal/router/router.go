package router

import "context"

// Classify determines user intent from message.
// It is deterministic and has no failure mode: an unrecognised message yields NoMatch.
func (r *KeywordRouter) Classify(ctx context.Context, message string) Verdict {
	for _, c := range r.classifiers {
		verdict, ok := c.Match(message)
		if !ok {
			continue
		}
		r.l.Debugf(ctx, "%s: classified as %s (lang=%s, product_id=%d)",
			LogPrefixClassify, verdict.Intent, verdict.Language, verdict.ProductID)
		return verdict
	}

	r.l.Debugf(ctx, "%s: no intent matched", LogPrefixClassify)
	return NoMatch
}
