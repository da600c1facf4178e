package services

import (
	"context"

	"petshop/internal/domain"
	"petshop/internal/repos"
)

type CustomerService struct {
	Store *repos.Provider
}

func NewCustomerService(store *repos.Provider) *CustomerService {
	return &CustomerService{Store: store}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sc.Release()
	return sc.Customers().List(ctx)
}

func (s *CustomerService) Create(ctx context.Context, c domain.Customer) (int64, error) {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer sc.Release()
	return sc.Customers().Create(ctx, c)
}

func (s *CustomerService) Update(ctx context.Context, id int64, body map[string]string) error {
	a := assignments(customerFields, body)
	if a.Len() == 0 {
		return ErrNoFields
	}
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sc.Release()
	return sc.Customers().Update(ctx, id, a)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sc.Release()
	return sc.Customers().Delete(ctx, id)
}
