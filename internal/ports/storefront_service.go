package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// StorefrontService — публичная витрина.
type StorefrontService interface {
	Banners(ctx context.Context) ([]domain.Banner, error)
	Products(ctx context.Context) ([]domain.Product, error)
	RegisterOrder(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error)
}
