package recommendation

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/fashion-marketplace-backend/internal/catalog"
	"github.com/wichananm65/fashion-marketplace-backend/internal/narration"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

var ErrNotRecommended = errors.New("product not in recommendations")

// Detail is one recommended item with its long-form narration.
type Detail struct {
	Item      Item             `json:"item"`
	Rank      int              `json:"rank"`
	Narration narration.Detail `json:"narration"`
}

type Service struct {
	products     catalog.Provider
	sessions     *stylecontext.Store
	orchestrator *Orchestrator
}

func NewService(products catalog.Provider, sessions *stylecontext.Store, orchestrator *Orchestrator) *Service {
	if orchestrator == nil {
		orchestrator = NewOrchestrator(nil)
	}
	return &Service{products: products, sessions: sessions, orchestrator: orchestrator}
}

// ForBuyer ranks the active catalog against the buyer's applied context.
// The draft never affects the result.
func (s *Service) ForBuyer(ctx context.Context, buyerID string) ([]Item, error) {
	items, _, err := s.rank(ctx, buyerID)
	return items, err
}

// DetailForBuyer returns the narration for one product. Rank is the product's
// zero-based position in the buyer's full list.
func (s *Service) DetailForBuyer(ctx context.Context, buyerID, productID string) (Detail, error) {
	items, applied, err := s.rank(ctx, buyerID)
	if err != nil {
		return Detail{}, err
	}
	for i, it := range items {
		if it.Product.ID != productID {
			continue
		}
		return Detail{
			Item:      it,
			Rank:      i,
			Narration: narration.Describe(narration.Seed(it.Product.ID), it.Confidence, it.Reasons, applied),
		}, nil
	}
	return Detail{}, ErrNotRecommended
}

func (s *Service) rank(ctx context.Context, buyerID string) ([]Item, stylecontext.StyleContext, error) {
	applied := s.sessions.Applied(buyerID)
	products, err := s.products.ActiveProducts(ctx)
	if err != nil {
		return nil, applied, fmt.Errorf("fetch active products: %w", err)
	}
	return s.orchestrator.Recommend(products, applied), applied, nil
}
