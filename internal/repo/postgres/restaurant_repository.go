package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что RestaurantRepository удовлетворяет интерфейсу RestaurantRepository.
var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)

// RestaurantRepository — рестораны и их меню.
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository — конструктор RestaurantRepository.
func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

// List — рестораны по имени.
func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, contact_phone
		FROM restaurants
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select restaurants: %w", err)
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restaurants rows: %w", err)
	}
	return out, nil
}

// MenuItems — пункты меню вместе с рестораном.
func (r *RestaurantRepository) MenuItems(ctx context.Context, onlyAvailable bool) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name, r.address, r.contact_phone, m.product_id, m.availability
		FROM restaurant_menu_items m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE NOT $1 OR m.availability
		ORDER BY m.id
	`, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(
			&it.Restaurant.ID, &it.Restaurant.Name, &it.Restaurant.Address, &it.Restaurant.ContactPhone,
			&it.ProductID, &it.Available,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu items rows: %w", err)
	}
	return out, nil
}
