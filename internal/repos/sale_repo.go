package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"petshop/internal/domain"
)

// SaleRepo is append-only: there is no update or delete.
type SaleRepo struct {
	db Querier
	d  Dialect
}

func NewSaleRepo(db Querier, d Dialect) *SaleRepo { return &SaleRepo{db: db, d: d} }

// Create inserts a sale row; sale_date is filled in by the store.
func (r *SaleRepo) Create(ctx context.Context, s domain.Sale) (int64, error) {
	id, err := insert(ctx, r.db, r.d, `
		INSERT INTO sales(pet_id, customer_id, quantity, total_price)
		VALUES(?, ?, ?, ?)`,
		s.PetID, s.CustomerID, s.Quantity, s.TotalPrice)
	return id, errors.Wrap(err, "create sale")
}

func (r *SaleRepo) Get(ctx context.Context, id int64) (domain.Sale, error) {
	var s domain.Sale
	err := sqlx.GetContext(ctx, r.db, &s, r.d.rebind(`
		SELECT id, pet_id, customer_id, quantity, total_price, sale_date
		FROM sales WHERE id = ?`), id)
	if isNoRows(err) {
		return domain.Sale{}, errors.Wrapf(domain.ErrNotFound, "sale %d", id)
	}
	return s, errors.Wrap(err, "get sale")
}

// ListLatest returns every sale with its pet and customer summary, newest first.
func (r *SaleRepo) ListLatest(ctx context.Context) ([]domain.SaleRow, error) {
	out := []domain.SaleRow{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT s.id, s.pet_id, s.customer_id, s.quantity, s.total_price, s.sale_date,
		       p.name AS pet_name, p.species AS pet_species, p.breed AS pet_breed,
		       c.name AS customer_name, c.phone AS customer_phone
		FROM sales s
		JOIN pets p ON s.pet_id = p.id
		JOIN customers c ON s.customer_id = c.id
		ORDER BY s.sale_date DESC, s.id DESC`)
	return out, errors.Wrap(err, "list sales")
}
