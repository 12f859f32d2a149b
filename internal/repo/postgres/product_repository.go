package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — каталог товаров на Postgres.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository — конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const selectProducts = `
	SELECT p.id, p.name, p.price, p.image, p.special_status, p.description, c.id, c.name
	FROM products p
	LEFT JOIN product_categories c ON c.id = p.category_id`

// ListAvailable — товары, которые хотя бы один ресторан держит «в продаже».
func (r *ProductRepository) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, selectProducts+`
		WHERE EXISTS (
			SELECT 1 FROM restaurant_menu_items m
			WHERE m.product_id = p.id AND m.availability
		)
		ORDER BY p.id`)
}

// ListAll — весь каталог.
func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, selectProducts+` ORDER BY p.id`)
}

// GetByIDs — товары по списку ID; отсутствующие просто не попадают в результат.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, selectProducts+` WHERE p.id = ANY($1) ORDER BY p.id`, ids)
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return out, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p            domain.Product
		categoryID   *int64
		categoryName *string
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Image, &p.SpecialStatus, &p.Description,
		&categoryID, &categoryName,
	); err != nil {
		return domain.Product{}, fmt.Errorf("scan product: %w", err)
	}
	if categoryID != nil && categoryName != nil {
		p.Category = &domain.ProductCategory{ID: *categoryID, Name: *categoryName}
	}
	return p, nil
}
