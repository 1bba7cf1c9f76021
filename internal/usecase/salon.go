package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/repository"
)

type SalonUsecase struct {
	repo repository.SalonRepository
}

func NewSalonUsecase(repo repository.SalonRepository) *SalonUsecase {
	return &SalonUsecase{repo: repo}
}

type CreateSalonInput struct {
	Name       string
	Area       string
	Rating     float64
	Services   []string
	PriceRange string
	Phone      string
	Address    string
	Hours      string
	Notes      string
}

func (u *SalonUsecase) List(ctx context.Context) ([]*domain.Salon, error) {
	salons, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list salons: %w", err)
	}
	return salons, nil
}

func (u *SalonUsecase) Create(ctx context.Context, in CreateSalonInput) (*domain.Salon, error) {
	name := strings.TrimSpace(in.Name)
	area := strings.TrimSpace(in.Area)
	priceRange := strings.TrimSpace(in.PriceRange)

	if name == "" || area == "" || priceRange == "" {
		return nil, &domain.ValidationError{Reason: "Name, area and price range are required"}
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, &domain.ValidationError{Reason: "Rating must be between 0 and 5"}
	}

	salon := &domain.Salon{
		Name:       name,
		Area:       area,
		Rating:     in.Rating,
		Services:   normalizeTags(in.Services),
		PriceRange: priceRange,
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		Hours:      strings.TrimSpace(in.Hours),
		Notes:      strings.TrimSpace(in.Notes),
	}

	created, err := u.repo.Create(ctx, salon)
	if err != nil {
		return nil, fmt.Errorf("create salon: %w", err)
	}
	return created, nil
}

// normalizeTags trims each tag, drops empties and keeps only the first
// occurrence of a duplicate, preserving order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
