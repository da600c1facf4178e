package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"petshop/internal/domain"
)

type PetRepo struct {
	db Querier
	d  Dialect
}

func NewPetRepo(db Querier, d Dialect) *PetRepo { return &PetRepo{db: db, d: d} }

const petColumns = `id, name, species, breed, age, price, quantity`

// List returns pets newest first. inStock keeps only pets with quantity > 0.
func (r *PetRepo) List(ctx context.Context, inStock bool) ([]domain.Pet, error) {
	where := ``
	if inStock {
		where = `WHERE quantity > 0`
	}
	out := []domain.Pet{}
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT `+petColumns+`
		FROM pets `+where+`
		ORDER BY created_at DESC, id DESC`)
	return out, errors.Wrap(err, "list pets")
}

func (r *PetRepo) Get(ctx context.Context, id int64) (domain.Pet, error) {
	var p domain.Pet
	err := sqlx.GetContext(ctx, r.db, &p, r.d.rebind(`SELECT `+petColumns+` FROM pets WHERE id = ?`), id)
	if isNoRows(err) {
		return domain.Pet{}, errors.Wrapf(domain.ErrNotFound, "pet %d", id)
	}
	return p, errors.Wrap(err, "get pet")
}

func (r *PetRepo) Create(ctx context.Context, p domain.Pet) (int64, error) {
	id, err := insert(ctx, r.db, r.d, `
		INSERT INTO pets(name, species, breed, age, price, quantity)
		VALUES(?, ?, ?, ?, ?, ?)`,
		p.Name, p.Species, p.Breed, p.Age, p.Price, p.Quantity)
	return id, errors.Wrap(err, "create pet")
}

func (r *PetRepo) Update(ctx context.Context, id int64, a *Assignments) error {
	q, args := a.SQL("pets", id)
	res, err := r.db.ExecContext(ctx, r.d.rebind(q), args...)
	if err != nil {
		return errors.Wrap(err, "update pet")
	}
	return affected(res, errors.Wrapf(domain.ErrNotFound, "pet %d", id))
}

func (r *PetRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.rebind(`DELETE FROM pets WHERE id = ?`), id)
	if err != nil {
		return errors.Wrap(err, "delete pet")
	}
	return affected(res, errors.Wrapf(domain.ErrNotFound, "pet %d", id))
}
