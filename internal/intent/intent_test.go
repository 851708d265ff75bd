package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

func TestParse(t *testing.T) {
	explore := true
	tests := []struct {
		name string
		text string
		want stylecontext.Partial
	}{
		{"occasion and style", "wedding outfits for a classic look", stylecontext.Partial{Occasion: stylecontext.OccasionWedding, StyleOverride: stylecontext.StyleClassic}},
		{"exploration only", "something trendy near me", stylecontext.Partial{Exploration: &explore}},
		{"nearby", "Boutiques NEARBY", stylecontext.Partial{Exploration: &explore}},
		{"case insensitive", "OFFICE wear", stylecontext.Partial{Occasion: stylecontext.OccasionOffice}},
		{"first occasion wins", "casual party then a wedding", stylecontext.Partial{Occasion: stylecontext.OccasionWedding}},
		{"party before office", "office party", stylecontext.Partial{Occasion: stylecontext.OccasionParty}},
		{"old money", "old money vibes", stylecontext.Partial{StyleOverride: stylecontext.StyleClassic}},
		{"traditional beats classic", "classic traditional kurta", stylecontext.Partial{StyleOverride: stylecontext.StyleTraditional}},
		{"street", "streetwear drop", stylecontext.Partial{StyleOverride: stylecontext.StyleStreetwear}},
		{"all categories", "street style for a casual day nearby", stylecontext.Partial{Occasion: stylecontext.OccasionCasual, StyleOverride: stylecontext.StyleStreetwear, Exploration: &explore}},
		{"no match", "something trendy", stylecontext.Partial{}},
		{"empty", "", stylecontext.Partial{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			assert.True(t, tt.want.Equal(got), "Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
		})
	}
}

func TestParse_NoMatchIsEmpty(t *testing.T) {
	got := Parse("just browsing")
	require.True(t, got.IsEmpty())
	assert.Nil(t, got.Exploration)
}
