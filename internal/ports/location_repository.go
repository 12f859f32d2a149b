package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// LocationRepository — постоянное хранилище координат адресов (только чтение и вставка).
type LocationRepository interface {
	// FindByAddresses — снимок уже известных адресов одним запросом.
	FindByAddresses(ctx context.Context, addresses []string) (map[string]domain.Location, error)
	// GetOrCreate — вставляет запись, если адреса ещё нет; побеждает первая запись,
	// возвращается то, что реально лежит в хранилище.
	GetOrCreate(ctx context.Context, location domain.Location) (domain.Location, error)
}
