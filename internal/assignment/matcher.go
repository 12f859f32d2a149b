package assignment

import "github.com/Gunvolt24/foodcart/internal/domain"

// Menu — индекс доступности «товар -> рестораны», строится один раз на страницу.
type Menu struct {
	restaurants []domain.Restaurant           // в порядке первого появления в меню
	byProduct   map[int64]map[int64]struct{} // product id -> restaurant ids
}

// NewMenu — учитываются только пункты с Available=true.
func NewMenu(items []domain.MenuItem) *Menu {
	m := &Menu{byProduct: make(map[int64]map[int64]struct{})}
	seen := make(map[int64]struct{})
	for _, it := range items {
		if !it.Available {
			continue
		}
		if _, ok := seen[it.Restaurant.ID]; !ok {
			seen[it.Restaurant.ID] = struct{}{}
			m.restaurants = append(m.restaurants, it.Restaurant)
		}
		set, ok := m.byProduct[it.ProductID]
		if !ok {
			set = make(map[int64]struct{})
			m.byProduct[it.ProductID] = set
		}
		set[it.Restaurant.ID] = struct{}{}
	}
	return m
}

// Candidates — рестораны, у которых в продаже каждый товар заказа.
// Для назначенного заказа и заказа без позиций — пусто.
func (m *Menu) Candidates(order domain.Order, items []domain.OrderItem) []domain.Restaurant {
	if order.Assigned() || len(items) == 0 {
		return nil
	}

	var out []domain.Restaurant
	for _, r := range m.restaurants {
		if m.cooksAll(r.ID, items) {
			out = append(out, r)
		}
	}
	return out
}

func (m *Menu) cooksAll(restaurantID int64, items []domain.OrderItem) bool {
	for _, it := range items {
		if _, ok := m.byProduct[it.ProductID][restaurantID]; !ok {
			return false
		}
	}
	return true
}
