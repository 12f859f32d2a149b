package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// BackofficeService — бэк-офис менеджера ресторанов.
type BackofficeService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Manager, error)
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	ProductMatrix(ctx context.Context) (*domain.ProductMatrix, error)
	OrdersPage(ctx context.Context) ([]domain.OrderDisplayRecord, error)
}
