package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type RestaurantRepository interface {
	// List — рестораны по имени.
	List(ctx context.Context) ([]domain.Restaurant, error)
	// MenuItems — пункты меню; onlyAvailable отбрасывает снятые с продажи.
	MenuItems(ctx context.Context, onlyAvailable bool) ([]domain.MenuItem, error)
}
