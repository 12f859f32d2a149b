package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type ProductRepository interface {
	// ListAvailable — товары, которые хотя бы один ресторан держит «в продаже».
	ListAvailable(ctx context.Context) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}
