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

// Проверка, что ManagerRepository удовлетворяет интерфейсу ManagerRepository.
var _ ports.ManagerRepository = (*ManagerRepository)(nil)

type ManagerRepository struct {
	pool *pgxpool.Pool
}

// NewManagerRepository — конструктор ManagerRepository.
func NewManagerRepository(pool *pgxpool.Pool) *ManagerRepository {
	return &ManagerRepository{pool: pool}
}

// GetByUsername — (nil, nil), если такого пользователя нет.
func (r *ManagerRepository) GetByUsername(ctx context.Context, username string) (*domain.Manager, error) {
	var m domain.Manager
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, is_staff
		FROM managers WHERE username = $1
	`, username).Scan(&m.ID, &m.Username, &m.PasswordHash, &m.IsStaff)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select manager: %w", err)
	}
	return &m, nil
}

// Upsert — создать менеджера или сменить ему пароль/флаг (используется foodctl).
func (r *ManagerRepository) Upsert(ctx context.Context, m *domain.Manager) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO managers (username, password_hash, is_staff)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			is_staff = EXCLUDED.is_staff
		RETURNING id
	`, m.Username, m.PasswordHash, m.IsStaff).Scan(&m.ID)
}
