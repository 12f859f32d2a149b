package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что LocationRepository удовлетворяет интерфейсу LocationRepository.
var _ ports.LocationRepository = (*LocationRepository)(nil)

// LocationRepository — координаты адресов; строки только вставляются.
// Нераспознанный адрес хранится с lat/lon = NULL.
type LocationRepository struct {
	pool *pgxpool.Pool
}

// NewLocationRepository — конструктор LocationRepository.
func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

// FindByAddresses — снимок известных адресов одним запросом.
func (r *LocationRepository) FindByAddresses(ctx context.Context, addresses []string) (map[string]domain.Location, error) {
	out := make(map[string]domain.Location, len(addresses))
	if len(addresses) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT address, lat, lon, verified_at
		FROM locations
		WHERE address = ANY($1)
	`, addresses)
	if err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out[loc.Address] = loc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locations rows: %w", err)
	}
	return out, nil
}

// GetOrCreate — INSERT ... ON CONFLICT DO NOTHING; проигравший конкурентную
// вставку перечитывает запись победителя.
func (r *LocationRepository) GetOrCreate(ctx context.Context, location domain.Location) (domain.Location, error) {
	var lat, lon *float64
	if location.Resolved {
		lat, lon = &location.Coordinate.Lat, &location.Coordinate.Lon
	}
	verifiedAt := location.VerifiedAt
	if verifiedAt.IsZero() {
		verifiedAt = time.Now().UTC()
	}

	stored, err := scanLocation(r.pool.QueryRow(ctx, `
		INSERT INTO locations (address, lat, lon, verified_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO NOTHING
		RETURNING address, lat, lon, verified_at
	`, location.Address, lat, lon, verifiedAt))
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Location{}, err
	}

	stored, err = scanLocation(r.pool.QueryRow(ctx, `
		SELECT address, lat, lon, verified_at
		FROM locations
		WHERE address = $1
	`, location.Address))
	if err != nil {
		return domain.Location{}, err
	}
	return stored, nil
}

func scanLocation(row pgx.Row) (domain.Location, error) {
	var (
		loc      domain.Location
		lat, lon *float64
	)
	if err := row.Scan(&loc.Address, &lat, &lon, &loc.VerifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, err
		}
		return domain.Location{}, fmt.Errorf("scan location: %w", err)
	}
	if lat != nil && lon != nil {
		loc.Coordinate = domain.Coordinate{Lat: *lat, Lon: *lon}
		loc.Resolved = true
	}
	return loc, nil
}
