package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"petshop/internal/domain"
)

type CustomerRepo struct {
	db Querier
	d  Dialect
}

func NewCustomerRepo(db Querier, d Dialect) *CustomerRepo { return &CustomerRepo{db: db, d: d} }

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT id, name, email, phone, address
		FROM customers
		ORDER BY created_at DESC, id DESC`)
	return out, errors.Wrap(err, "list customers")
}

func (r *CustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	err := sqlx.GetContext(ctx, r.db, &n, r.d.rebind(`SELECT COUNT(*) FROM customers WHERE id = ?`), id)
	if err != nil {
		return false, errors.Wrap(err, "find customer")
	}
	return n > 0, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer) (int64, error) {
	id, err := insert(ctx, r.db, r.d, `
		INSERT INTO customers(name, email, phone, address)
		VALUES(?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Address)
	return id, errors.Wrap(err, "create customer")
}

func (r *CustomerRepo) Update(ctx context.Context, id int64, a *Assignments) error {
	q, args := a.SQL("customers", id)
	res, err := r.db.ExecContext(ctx, r.d.rebind(q), args...)
	if err != nil {
		return errors.Wrap(err, "update customer")
	}
	return affected(res, errors.Wrapf(domain.ErrNotFound, "customer %d", id))
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.rebind(`DELETE FROM customers WHERE id = ?`), id)
	if err != nil {
		return errors.Wrap(err, "delete customer")
	}
	return affected(res, errors.Wrapf(domain.ErrNotFound, "customer %d", id))
}
