package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/glowbook/salon-directory/internal/domain"
	"github.com/glowbook/salon-directory/internal/usecase"
)

type fakeSalonRepo struct {
	list   func(ctx context.Context) ([]*domain.Salon, error)
	create func(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
}

func (r *fakeSalonRepo) List(ctx context.Context) ([]*domain.Salon, error) {
	return r.list(ctx)
}

func (r *fakeSalonRepo) Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	return r.create(ctx, salon)
}

func validSalon() usecase.CreateSalonInput {
	return usecase.CreateSalonInput{
		Name:       "Shine Studio",
		Area:       "Downtown",
		Rating:     4.5,
		Services:   []string{"haircut", "manicure"},
		PriceRange: "$$",
	}
}

func TestCreateSalon_MissingRequiredField_Fails(t *testing.T) {
	repo := &fakeSalonRepo{
		create: func(_ context.Context, _ *domain.Salon) (*domain.Salon, error) {
			t.Fatal("Create must not be called")
			return nil, nil
		},
	}
	uc := usecase.NewSalonUsecase(repo)

	for _, mutate := range []func(*usecase.CreateSalonInput){
		func(in *usecase.CreateSalonInput) { in.Name = "" },
		func(in *usecase.CreateSalonInput) { in.Area = "   " },
		func(in *usecase.CreateSalonInput) { in.PriceRange = "" },
	} {
		in := validSalon()
		mutate(&in)

		_, err := uc.Create(context.Background(), in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("input %+v: want ValidationError, got %v", in, err)
		}
	}
}

func TestCreateSalon_RatingOutOfBounds_Fails(t *testing.T) {
	repo := &fakeSalonRepo{
		create: func(_ context.Context, _ *domain.Salon) (*domain.Salon, error) {
			t.Fatal("Create must not be called")
			return nil, nil
		},
	}
	uc := usecase.NewSalonUsecase(repo)

	for _, rating := range []float64{-0.1, 5.1, 7} {
		in := validSalon()
		in.Rating = rating

		_, err := uc.Create(context.Background(), in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("rating %v: want ValidationError, got %v", rating, err)
		}
	}
}

func TestCreateSalon_BoundaryRatings_Accepted(t *testing.T) {
	repo := &fakeSalonRepo{
		create: func(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
			return salon, nil
		},
	}
	uc := usecase.NewSalonUsecase(repo)

	for _, rating := range []float64{0, 5} {
		in := validSalon()
		in.Rating = rating
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Errorf("rating %v: unexpected error %v", rating, err)
		}
	}
}

func TestCreateSalon_NormalizesTags(t *testing.T) {
	var captured *domain.Salon
	repo := &fakeSalonRepo{
		create: func(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
			captured = salon
			return salon, nil
		},
	}

	in := validSalon()
	in.Services = []string{" haircut ", "", "color", "haircut", "  "}
	if _, err := usecase.NewSalonUsecase(repo).Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"haircut", "color"}
	if !reflect.DeepEqual(captured.Services, want) {
		t.Errorf("services = %v, want %v", captured.Services, want)
	}
}

func TestListSalons_PassesThrough(t *testing.T) {
	salons := []*domain.Salon{{ID: "s-2"}, {ID: "s-1"}}
	repo := &fakeSalonRepo{
		list: func(_ context.Context) ([]*domain.Salon, error) { return salons, nil },
	}

	got, err := usecase.NewSalonUsecase(repo).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, salons) {
		t.Errorf("list = %v, want %v", got, salons)
	}
}
