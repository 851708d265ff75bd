package scoring

import (
	"math"

	"github.com/wichananm65/fashion-marketplace-backend/internal/catalog"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

const (
	OccasionWeight = 40
	StyleWeight    = 30
)

// Rejected is the score of a product that must never be recommended.
var Rejected = math.Inf(-1)

type Result struct {
	Score      float64    `json:"score"`
	Reasons    []string   `json:"reasons"`
	Confidence Confidence `json:"confidence"`
}

// IsRejected reports whether the result is a hard rejection.
func (r Result) IsRejected() bool {
	return math.IsInf(r.Score, -1)
}

// Rule scores one aspect of a product against a context. A rule that does
// not apply returns ok=false. Returning Rejected stops scoring.
type Rule func(p catalog.Product, ctx stylecontext.StyleContext) (delta float64, reason string, ok bool)

type Engine struct {
	rules []Rule
}

// NewEngine returns an engine running rules in order. With no rules the
// default occasion and style rules are used.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

func DefaultRules() []Rule {
	return []Rule{OccasionRule, StyleRule}
}

func OccasionRule(_ catalog.Product, ctx stylecontext.StyleContext) (float64, string, bool) {
	if ctx.Occasion == "" {
		return 0, "", false
	}
	return OccasionWeight, "Considered for " + string(ctx.Occasion), true
}

func StyleRule(_ catalog.Product, ctx stylecontext.StyleContext) (float64, string, bool) {
	if ctx.StyleOverride == "" {
		return 0, "", false
	}
	return StyleWeight, "Aligned with your style preference", true
}

// Score runs every rule against the product. It never fails.
func (e *Engine) Score(p catalog.Product, ctx stylecontext.StyleContext) Result {
	score := 0.0
	reasons := make([]string, 0, len(e.rules))
	for _, rule := range e.rules {
		delta, reason, ok := rule(p, ctx)
		if !ok {
			continue
		}
		if math.IsInf(delta, -1) {
			if reason != "" {
				reasons = append(reasons, reason)
			}
			return Result{Score: Rejected, Reasons: reasons, Confidence: Low}
		}
		score += delta
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}
	return Result{Score: score, Reasons: reasons, Confidence: ConfidenceFor(score)}
}

var defaultEngine = NewEngine()

// Score uses the default rules.
func Score(p catalog.Product, ctx stylecontext.StyleContext) Result {
	return defaultEngine.Score(p, ctx)
}
