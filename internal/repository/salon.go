package repository

import (
	"context"

	"github.com/glowbook/salon-directory/internal/domain"
)

type SalonRepository interface {
	// List returns all salons, most recently created first.
	List(ctx context.Context) ([]*domain.Salon, error)
	Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
}
