package postgres

import (
	"context"
	"fmt"

	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SalonRepository struct {
	pool *pgxpool.Pool
}

func NewSalonRepository(pool *pgxpool.Pool) *SalonRepository {
	return &SalonRepository{pool: pool}
}

func (r *SalonRepository) List(ctx context.Context) ([]*domain.Salon, error) {
	query := `
		SELECT id, name, area, rating, services, price_range,
		       phone, address, hours, notes, created_at
		FROM salons
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list salons: %w", err)
	}
	defer rows.Close()

	var salons []*domain.Salon
	for rows.Next() {
		s, err := scanSalon(rows)
		if err != nil {
			return nil, err
		}
		salons = append(salons, s)
	}
	return salons, rows.Err()
}

func (r *SalonRepository) Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	query := `
		INSERT INTO salons (name, area, rating, services, price_range,
		                    phone, address, hours, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, area, rating, services, price_range,
		          phone, address, hours, notes, created_at`

	row := r.pool.QueryRow(ctx, query,
		salon.Name,
		salon.Area,
		salon.Rating,
		salon.Services,
		salon.PriceRange,
		salon.Phone,
		salon.Address,
		salon.Hours,
		salon.Notes,
	)

	return scanSalon(row)
}

func scanSalon(row pgx.Row) (*domain.Salon, error) {
	var s domain.Salon
	err := row.Scan(&s.ID, &s.Name, &s.Area, &s.Rating, &s.Services,
		&s.PriceRange, &s.Phone, &s.Address, &s.Hours, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan salon: %w", err)
	}
	return &s, nil
}
