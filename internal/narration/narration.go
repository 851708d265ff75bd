// Package narration turns confidence tiers and rank positions into display
// sentences. Selection is deterministic per product so the same item always
// reads the same way while neighbouring items tend to differ.
package narration

import (
	"github.com/cespare/xxhash/v2"
	"github.com/wichananm65/fashion-marketplace-backend/internal/scoring"
)

// Bank is an ordered set of interchangeable phrases.
type Bank []string

var (
	TopPick = Bank{
		"This would be my first pick for you today.",
		"If I had to choose one for you right now, I’d go with this.",
		"This fits your intent the best out of the current options.",
	}
	StrongAlternative = Bank{
		"This is a strong alternative if you want another option.",
		"A good second choice that still aligns well with what you’re going for.",
		"Worth considering if you want a slightly different vibe.",
	}
	SafeOption = Bank{
		"This is a safe option that should work without much risk.",
		"A balanced choice if you want something reliable.",
		"Not the boldest pick, but dependable.",
	}
	LowConfidence = Bank{
		"I wouldn’t prioritise this for today.",
		"This isn’t the strongest match right now.",
		"Better suited for a different context.",
	}
)

var opinions = map[scoring.Confidence]string{
	scoring.High:   "This is a strong match for you today. It aligns well with your preferences and intent.",
	scoring.Medium: "This is a decent option and should work fine, though there may be better alternatives.",
	scoring.Low:    "This may not be the best pick for today, but it could make sense in a different context.",
}

// Seed derives the selection seed from a product id.
func Seed(id string) uint64 {
	return xxhash.Sum64String(id)
}

// PickPhrase returns bank[seed mod len(bank)], or "" for an empty bank.
func PickPhrase(bank Bank, seed uint64) string {
	if len(bank) == 0 {
		return ""
	}
	return bank[seed%uint64(len(bank))]
}

// Opinion is the base sentence for a tier, independent of rank.
func Opinion(c scoring.Confidence) string {
	if s, ok := opinions[c]; ok {
		return s
	}
	return opinions[scoring.Low]
}

// RankComment picks the commentary for an item at a zero-based position in
// the ranked list. Low confidence items always get a low-confidence phrase.
// ok is false when the position carries no comment.
func RankComment(position int, c scoring.Confidence, seed uint64) (string, bool) {
	if c == scoring.Low {
		return PickPhrase(LowConfidence, seed), true
	}
	switch position {
	case 0:
		return PickPhrase(TopPick, seed), true
	case 1:
		return PickPhrase(StrongAlternative, seed), true
	case 2:
		return PickPhrase(SafeOption, seed), true
	default:
		return "", false
	}
}
