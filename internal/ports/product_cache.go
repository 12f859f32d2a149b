package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// ProductCache — кэш товаров каталога.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type ProductCache interface {
	// Get — вернуть товар по ID; (product, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, productID int64) (*domain.Product, bool)

	// Set — сохранить/обновить товар в кэше.
	Set(ctx context.Context, product *domain.Product) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, products []domain.Product) error
}
