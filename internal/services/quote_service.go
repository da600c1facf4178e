package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"petshop/internal/domain"
	"petshop/internal/repos"
)

// Quote is what the sale form shows before submitting.
type Quote struct {
	Pet       domain.Pet
	Quantity  int64
	Total     decimal.Decimal
	Available bool
}

type QuoteService struct {
	Store *repos.Provider
}

func NewQuoteService(store *repos.Provider) *QuoteService {
	return &QuoteService{Store: store}
}

// Price computes price × quantity from an unlocked read. The stock it reports
// may be stale by the time a sale is recorded; only SaleService.Record decides.
func (s *QuoteService) Price(ctx context.Context, petID, qty int64) (Quote, error) {
	if qty < 1 {
		return Quote{}, errors.Wrap(domain.ErrValidation, "quantity must be at least 1")
	}
	sc, err := s.Store.Acquire(ctx)
	if err != nil {
		return Quote{}, err
	}
	defer sc.Release()

	p, err := sc.Pets().Get(ctx, petID)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Pet:       p,
		Quantity:  qty,
		Total:     p.Price.Mul(decimal.NewFromInt(qty)),
		Available: qty <= p.Quantity,
	}, nil
}
