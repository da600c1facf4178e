package repos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"petshop/internal/domain"
)

// InventoryRepo reads and writes pet stock inside a sale transaction.
type InventoryRepo struct {
	db Querier
	d  Dialect
}

func NewInventoryRepo(db Querier, d Dialect) *InventoryRepo { return &InventoryRepo{db: db, d: d} }

// LockStock reads the stock of a pet and holds an exclusive lock on its row
// until the transaction ends. A concurrent LockStock on the same pet blocks.
func (r *InventoryRepo) LockStock(ctx context.Context, petID int64) (int64, error) {
	var qty int64
	err := sqlx.GetContext(ctx, r.db, &qty,
		r.d.rebind(`SELECT quantity FROM pets WHERE id = ?`+r.d.Lock), petID)
	if isNoRows(err) {
		return 0, errors.Wrapf(domain.ErrNotFound, "pet %d", petID)
	}
	return qty, errors.Wrap(err, "lock stock")
}

func (r *InventoryRepo) SetStock(ctx context.Context, petID, qty int64) error {
	res, err := r.db.ExecContext(ctx, r.d.rebind(`UPDATE pets SET quantity = ? WHERE id = ?`), qty, petID)
	if err != nil {
		return errors.Wrap(err, "set stock")
	}
	return affected(res, errors.Wrapf(domain.ErrNotFound, "pet %d", petID))
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
