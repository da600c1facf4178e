package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"petshop/internal/domain"
	"petshop/internal/repos"
)

// SaleInput is what a caller submits. TotalPrice is stored as given; it is
// not checked against price × quantity.
type SaleInput struct {
	PetID      int64
	CustomerID int64
	Quantity   int64
	TotalPrice decimal.Decimal
}

// validate only checks the quantity. Ids that match no row, zero and negative
// ids included, are reported as not found by the lookups in Record.
func (in SaleInput) validate() error {
	if in.Quantity < 1 {
		return errors.Wrap(domain.ErrValidation, "quantity must be at least 1")
	}
	return nil
}

// SaleService is the only path that moves stock into the ledger.
type SaleService struct {
	Store *repos.Provider
}

func NewSaleService(store *repos.Provider) *SaleService {
	return &SaleService{Store: store}
}

// Record sells in.Quantity units of a pet in one transaction. The pet row is
// locked before its stock is read, so concurrent sales of the same pet run
// one after the other and each sees the stock left by the previous one.
// Nothing is written unless every step succeeds.
func (s *SaleService) Record(ctx context.Context, in SaleInput) (domain.Sale, error) {
	if err := in.validate(); err != nil {
		return domain.Sale{}, err
	}

	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return domain.Sale{}, err
	}
	defer sc.Release()

	tx, err := sc.Begin(ctx)
	if err != nil {
		return domain.Sale{}, err
	}
	defer tx.Rollback()

	stock, err := tx.Inventory().LockStock(ctx, in.PetID)
	if err != nil {
		return domain.Sale{}, err
	}
	ok, err := tx.Customers().Exists(ctx, in.CustomerID)
	if err != nil {
		return domain.Sale{}, err
	}
	if !ok {
		return domain.Sale{}, errors.Wrapf(domain.ErrNotFound, "customer %d", in.CustomerID)
	}
	if in.Quantity > stock {
		return domain.Sale{}, errors.Wrapf(domain.ErrInsufficientStock,
			"pet %d: requested %d, available %d", in.PetID, in.Quantity, stock)
	}

	if err := tx.Inventory().SetStock(ctx, in.PetID, stock-in.Quantity); err != nil {
		return domain.Sale{}, err
	}
	id, err := tx.Sales().Create(ctx, domain.Sale{
		PetID:      in.PetID,
		CustomerID: in.CustomerID,
		Quantity:   in.Quantity,
		TotalPrice: in.TotalPrice,
	})
	if err != nil {
		return domain.Sale{}, err
	}
	sale, err := tx.Sales().Get(ctx, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

// List returns the sales report, newest first.
func (s *SaleService) List(ctx context.Context) ([]domain.SaleRow, error) {
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sc.Release()
	return sc.Sales().ListLatest(ctx)
}
