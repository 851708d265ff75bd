package narration

import (
	"github.com/wichananm65/fashion-marketplace-backend/internal/scoring"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

var (
	DetailHeaders = Bank{
		"Here’s my honest take",
		"This is how I see it",
		"Let’s break this down",
	}
	PositiveHeaders = Bank{
		"What works well",
		"Why this makes sense",
		"Strong points",
	}
	ConcernHeaders = Bank{
		"Things to consider",
		"Potential tradeoffs",
		"Where it may fall short",
	}

	finalOpinions = map[scoring.Confidence]Bank{
		scoring.High: {
			"Overall, this is a strong recommendation for you today.",
			"If you’re deciding now, I’d confidently go with this.",
			"This aligns very well with what you’re looking for.",
		},
		scoring.Medium: {
			"This is a solid option, though it’s worth comparing with others.",
			"A good choice, but not the only one worth considering.",
			"Works well overall, with a few tradeoffs in mind.",
		},
		scoring.Low: {
			"I wouldn’t prioritise this for today.",
			"This isn’t the strongest option right now.",
			"Better saved for a different context.",
		},
	}
)

const (
	noOccasionConcern = "No occasion is set, so this wasn't matched to a specific event."
	noStyleConcern    = "No style preference is set, so the fit with your look is unconfirmed."
)

// Detail is the long-form narration for a single recommended product.
type Detail struct {
	Header         string   `json:"header"`
	PositiveHeader string   `json:"positiveHeader"`
	Positives      []string `json:"positives"`
	ConcernHeader  string   `json:"concernHeader"`
	Concerns       []string `json:"concerns"`
	FinalOpinion   string   `json:"finalOpinion"`
}

// Describe builds the detail narration from an item's reasons and tier and the
// context it was scored against.
func Describe(seed uint64, c scoring.Confidence, reasons []string, ctx stylecontext.StyleContext) Detail {
	positives := make([]string, 0, len(reasons))
	positives = append(positives, reasons...)

	concerns := []string{}
	if ctx.Occasion == "" {
		concerns = append(concerns, noOccasionConcern)
	}
	if ctx.StyleOverride == "" {
		concerns = append(concerns, noStyleConcern)
	}

	final, ok := finalOpinions[c]
	if !ok {
		final = finalOpinions[scoring.Low]
	}
	return Detail{
		Header:         PickPhrase(DetailHeaders, seed),
		PositiveHeader: PickPhrase(PositiveHeaders, seed),
		Positives:      positives,
		ConcernHeader:  PickPhrase(ConcernHeaders, seed),
		Concerns:       concerns,
		FinalOpinion:   PickPhrase(final, seed),
	}
}
