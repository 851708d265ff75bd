// Package recommendation ranks a catalog against a buyer's applied style
// context and attaches the narration shown next to each item.
package recommendation

import (
	"sort"

	"github.com/wichananm65/fashion-marketplace-backend/internal/catalog"
	"github.com/wichananm65/fashion-marketplace-backend/internal/narration"
	"github.com/wichananm65/fashion-marketplace-backend/internal/scoring"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

// Item is the public DTO returned by the recommendations API.
type Item struct {
	Product     catalog.Product    `json:"product"`
	Score       float64            `json:"score"`
	Confidence  scoring.Confidence `json:"confidence"`
	Reasons     []string           `json:"reasons"`
	Opinion     string             `json:"opinion"`
	RankComment string             `json:"rankComment,omitempty"`
}

type Orchestrator struct {
	engine *scoring.Engine
}

func NewOrchestrator(engine *scoring.Engine) *Orchestrator {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	return &Orchestrator{engine: engine}
}

// Recommend scores every product, drops hard rejections and returns the rest
// ordered by score desc. Equal scores keep catalog order. The result is never nil.
func (o *Orchestrator) Recommend(products []catalog.Product, ctx stylecontext.StyleContext) []Item {
	items := make([]Item, 0, len(products))
	for _, p := range products {
		res := o.engine.Score(p, ctx)
		if res.IsRejected() {
			continue
		}
		items = append(items, Item{
			Product:    p,
			Score:      res.Score,
			Confidence: res.Confidence,
			Reasons:    res.Reasons,
			Opinion:    narration.Opinion(res.Confidence),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	for i := range items {
		if c, ok := narration.RankComment(i, items[i].Confidence, narration.Seed(items[i].Product.ID)); ok {
			items[i].RankComment = c
		}
	}
	return items
}

var defaultOrchestrator = NewOrchestrator(nil)

// Recommend runs the default scoring rules.
func Recommend(products []catalog.Product, ctx stylecontext.StyleContext) []Item {
	return defaultOrchestrator.Recommend(products, ctx)
}
