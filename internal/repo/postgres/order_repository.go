package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Create — транзакционно сохраняет заказ и его позиции.
// Повтор с тем же external_id ничего не пишет и возвращает ID существующего заказа.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	if len(order.Items) == 0 {
		return errors.New("order has no items")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	// после Commit откат — no-op
	defer func() { _ = transaction.Rollback(ctx) }()

	var cookingID *int64
	if order.CookingRestaurant != nil {
		cookingID = &order.CookingRestaurant.ID
	}

	// 1) orders — вставка; конфликт по external_id означает повторную доставку.
	err = transaction.QueryRow(ctx, `
		INSERT INTO orders (
			external_id, status, payment_method, created_at,
			firstname, lastname, phonenumber, address, comment, cooking_restaurant_id
		) VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING id
	`,
		order.ExternalID, int16(order.Status), string(order.PaymentMethod), order.Created,
		order.Firstname, order.Lastname, order.Phonenumber, order.Address, order.Comment, cookingID,
	).Scan(&order.ID)

	if errors.Is(err, pgx.ErrNoRows) {
		if err = transaction.QueryRow(ctx,
			`SELECT id FROM orders WHERE external_id = $1`, order.ExternalID,
		).Scan(&order.ID); err != nil {
			return fmt.Errorf("select existing order: %w", err)
		}
		return transaction.Commit(ctx)
	}
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	// 2) order_items — пачкой через COPY.
	if err = copyItems(ctx, transaction, order.ID, order.Items); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func copyItems(ctx context.Context, tx pgx.Tx, orderID int64, items []domain.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{orderID, it.ProductID, it.Quantity, it.Price})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "product_id", "quantity", "price"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy items: %w", err)
	}
	return nil
}

// PendingLines — позиции всех невыполненных заказов, по (status, order id).
func (r *OrderRepository) PendingLines(ctx context.Context) ([]domain.OrderLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.external_id, o.status, o.payment_method, o.created_at,
			o.firstname, o.lastname, o.phonenumber, o.address, o.comment,
			r.id, r.name, r.address, r.contact_phone,
			i.product_id, i.quantity, i.price
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		LEFT JOIN restaurants r ON r.id = o.cooking_restaurant_id
		WHERE o.status <> $1
		ORDER BY o.status, o.id, i.id
	`, int16(domain.StatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("select pending lines: %w", err)
	}
	defer rows.Close()

	var out []domain.OrderLine
	for rows.Next() {
		var (
			l          domain.OrderLine
			externalID *string
			status     int16
			payment    string
			restID     *int64
			restName   *string
			restAddr   *string
			restPhone  *string
		)
		if err := rows.Scan(
			&l.Order.ID, &externalID, &status, &payment, &l.Order.Created,
			&l.Order.Firstname, &l.Order.Lastname, &l.Order.Phonenumber, &l.Order.Address, &l.Order.Comment,
			&restID, &restName, &restAddr, &restPhone,
			&l.Item.ProductID, &l.Item.Quantity, &l.Item.Price,
		); err != nil {
			return nil, fmt.Errorf("scan pending line: %w", err)
		}

		l.Order.Status = domain.OrderStatus(status)
		l.Order.PaymentMethod = domain.PaymentMethod(payment)
		if externalID != nil {
			l.Order.ExternalID = *externalID
		}
		if restID != nil {
			l.Order.CookingRestaurant = &domain.Restaurant{
				ID:           *restID,
				Name:         deref(restName),
				Address:      deref(restAddr),
				ContactPhone: deref(restPhone),
			}
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pending lines rows: %w", err)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
