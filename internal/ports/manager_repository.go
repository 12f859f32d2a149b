package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type ManagerRepository interface {
	// GetByUsername — (nil, nil), если такого пользователя нет.
	GetByUsername(ctx context.Context, username string) (*domain.Manager, error)
}
