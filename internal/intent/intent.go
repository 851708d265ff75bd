// Package intent turns a buyer's free-text request into a partial style
// context by keyword matching.
package intent

import (
	"strings"

	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

type keyword[T any] struct {
	terms []string
	value T
}

// Checked in order; the first hit in each category wins.
var (
	occasionKeywords = []keyword[stylecontext.Occasion]{
		{[]string{"wedding"}, stylecontext.OccasionWedding},
		{[]string{"party"}, stylecontext.OccasionParty},
		{[]string{"office"}, stylecontext.OccasionOffice},
		{[]string{"casual"}, stylecontext.OccasionCasual},
	}
	styleKeywords = []keyword[stylecontext.Style]{
		{[]string{"traditional"}, stylecontext.StyleTraditional},
		{[]string{"classic", "old money"}, stylecontext.StyleClassic},
		{[]string{"street"}, stylecontext.StyleStreetwear},
	}
	explorationTerms = []string{"near me", "nearby"}
)

// Parse maps text to a context update. Occasion, style and exploration are
// matched independently, so one request can set all three. Text with no
// known keyword yields an empty partial.
func Parse(text string) stylecontext.Partial {
	t := strings.ToLower(text)

	var p stylecontext.Partial
	if v, ok := firstMatch(t, occasionKeywords); ok {
		p.Occasion = v
	}
	if v, ok := firstMatch(t, styleKeywords); ok {
		p.StyleOverride = v
	}
	if containsAny(t, explorationTerms) {
		explore := true
		p.Exploration = &explore
	}
	return p
}

func firstMatch[T any](t string, kws []keyword[T]) (T, bool) {
	for _, kw := range kws {
		if containsAny(t, kw.terms) {
			return kw.value, true
		}
	}
	var zero T
	return zero, false
}

func containsAny(t string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
