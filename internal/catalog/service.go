package catalog

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ActiveProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ActiveProducts(ctx)
}

func (s *Service) GetActive(ctx context.Context, id string) (Product, error) {
	return s.repo.GetActive(ctx, id)
}

// ResetProducts replaces all products with the given list (used for dev / seeding).
func (s *Service) ResetProducts(ctx context.Context, products []Product) ([]Product, error) {
	return s.repo.Reset(ctx, products)
}
