//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// SeedRestaurant — ресторан с уникальным именем и заданным адресом.
func SeedRestaurant(ctx context.Context, pool *pgxpool.Pool, address string) (domain.Restaurant, error) {
	r := domain.Restaurant{Name: "rest-" + UniqSuffix(), Address: address, ContactPhone: "+74950000000"}
	err := pool.QueryRow(ctx, `
		INSERT INTO restaurants (name, address, contact_phone) VALUES ($1, $2, $3) RETURNING id
	`, r.Name, r.Address, r.ContactPhone).Scan(&r.ID)
	return r, err
}

// SeedProduct — товар без категории.
func SeedProduct(ctx context.Context, pool *pgxpool.Pool, price string) (domain.Product, error) {
	p := domain.Product{Name: "product-" + UniqSuffix(), Price: decimal.RequireFromString(price)}
	err := pool.QueryRow(ctx, `
		INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id
	`, p.Name, p.Price).Scan(&p.ID)
	return p, err
}

// SeedMenuItem — пункт меню ресторана.
func SeedMenuItem(ctx context.Context, pool *pgxpool.Pool, restaurantID, productID int64, available bool) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability) VALUES ($1, $2, $3)
	`, restaurantID, productID, available)
	return err
}

// Мини-генератор валидного заказа по товарам (по одной штуке каждого).
func MakeOrder(products ...domain.Product) domain.Order {
	o := domain.Order{
		ExternalID:    "ext-" + UniqSuffix(),
		Status:        domain.StatusUnprocessed,
		PaymentMethod: domain.PaymentCash,
		Created:       time.Now().UTC().Truncate(time.Second),
		Firstname:     "Иван",
		Lastname:      "Петров",
		Phonenumber:   "+79161234567",
		Address:       "Москва, ул. Тверская, 7",
	}
	for _, p := range products {
		o.Items = append(o.Items, domain.OrderItem{ProductID: p.ID, Quantity: 1, Price: p.Price})
	}
	return o
}
