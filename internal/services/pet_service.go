package services

import (
	"context"

	"github.com/pkg/errors"

	"petshop/internal/domain"
	"petshop/internal/repos"
)

// ErrNoFields is returned by an update whose body names no known column.
var ErrNoFields = errors.Wrap(domain.ErrValidation, "No updatable fields provided")

type PetService struct {
	Store *repos.Provider
}

func NewPetService(store *repos.Provider) *PetService {
	return &PetService{Store: store}
}

func (s *PetService) List(ctx context.Context, inStock bool) ([]domain.Pet, error) {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sc.Release()
	return sc.Pets().List(ctx, inStock)
}

func (s *PetService) Get(ctx context.Context, id int64) (domain.Pet, error) {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return domain.Pet{}, err
	}
	defer sc.Release()
	return sc.Pets().Get(ctx, id)
}

// Create stores p as given. Missing fields have already defaulted to zero
// values; an age of zero or less is stored as NULL.
func (s *PetService) Create(ctx context.Context, p domain.Pet) (int64, error) {
	if p.Age.Valid && p.Age.Int64 <= 0 {
		p.Age = Age(0)
	}
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer sc.Release()
	return sc.Pets().Create(ctx, p)
}

// Update applies the recognized keys of a decoded body and nothing else.
func (s *PetService) Update(ctx context.Context, id int64, body map[string]string) error {
	a := assignments(petFields, body)
	if a.Len() == 0 {
		return ErrNoFields
	}
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sc.Release()
	return sc.Pets().Update(ctx, id, a)
}

func (s *PetService) Delete(ctx context.Context, id int64) error {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sc.Release()
	return sc.Pets().Delete(ctx, id)
}
