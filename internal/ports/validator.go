package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, req *domain.OrderRequest) error
}
