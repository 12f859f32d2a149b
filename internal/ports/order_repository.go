package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type OrderRepository interface {
	// Create — сохраняет заказ с позициями и проставляет order.ID.
	// Повтор с тем же ExternalID не создаёт дубль: возвращается ID уже сохранённого заказа.
	Create(ctx context.Context, order *domain.Order) error
	// PendingLines — позиции всех невыполненных заказов, по (status, order id).
	PendingLines(ctx context.Context) ([]domain.OrderLine, error)
}
