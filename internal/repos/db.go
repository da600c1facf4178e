package repos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"petshop/internal/config"
)

// Querier is satisfied by a scoped connection and by a transaction on it.
type Querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Provider hands out one dedicated store connection per operation.
type Provider struct {
	db      *sqlx.DB
	dialect Dialect
}

// Open connects to the configured store, verifies it answers and makes sure
// the schema exists.
func Open(cfg config.Config) (*Provider, error) {
	d, ok := dialects[cfg.DBDriver]
	if !ok {
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	db, err := d.open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	db.SetMaxOpenConns(cfg.DBMaxOpen)
	db.SetMaxIdleConns(cfg.DBMaxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping store")
	}

	p := &Provider{db: db, dialect: d}
	if err := p.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	logrus.WithField("driver", d.Driver).Info("store.open")
	return p, nil
}

func (p *Provider) Dialect() Dialect { return p.dialect }

func (p *Provider) Close() error { return p.db.Close() }

// Acquire takes a dedicated connection. The caller must Release it on every
// exit path, normally with defer right after the error check.
func (p *Provider) Acquire(ctx context.Context) (*Scoped, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "acquire connection")
	}
	return &Scoped{conn: conn, d: p.dialect}, nil
}

func (p *Provider) ensureSchema(ctx context.Context) error {
	for _, stmt := range p.dialect.schema {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "ensure schema")
		}
	}
	return nil
}

// Seed inserts a few demo pets and customers when both tables are empty.
func (p *Provider) Seed(ctx context.Context) error {
	s, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer s.Release()

	var n int
	if err := sqlx.GetContext(ctx, s.conn, &n,
		`SELECT (SELECT COUNT(*) FROM pets) + (SELECT COUNT(*) FROM customers)`); err != nil {
		return errors.Wrap(err, "count rows")
	}
	if n > 0 {
		return nil
	}
	logrus.Info("seed.demo")

	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`INSERT INTO pets(name, species, breed, age, price, quantity) VALUES ('Rex', 'Dog', 'Labrador', 2, 450.00, 3)`,
		`INSERT INTO pets(name, species, breed, age, price, quantity) VALUES ('Mittens', 'Cat', 'Siamese', 1, 300.00, 2)`,
		`INSERT INTO pets(name, species, breed, age, price, quantity) VALUES ('Goldie', 'Fish', 'Goldfish', NULL, 4.99, 40)`,
		`INSERT INTO customers(name, email, phone, address) VALUES ('Alice Moreno', 'alice@petshop.test', '555-0101', '12 Oak Lane')`,
		`INSERT INTO customers(name, email, phone, address) VALUES ('Bob Stone', NULL, '555-0102', NULL)`,
	} {
		if _, err := tx.tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "seed")
		}
	}
	return tx.Commit()
}

// Scoped is a store handle owned by exactly one operation.
type Scoped struct {
	conn *sqlx.Conn
	d    Dialect
}

// Release returns the connection. With DB_MAX_IDLE=0 the pool closes it.
func (s *Scoped) Release() error {
	return s.conn.Close()
}

func (s *Scoped) Pets() *PetRepo           { return NewPetRepo(s.conn, s.d) }
func (s *Scoped) Customers() *CustomerRepo { return NewCustomerRepo(s.conn, s.d) }
func (s *Scoped) Sales() *SaleRepo         { return NewSaleRepo(s.conn, s.d) }

// Begin opens a transaction on the scoped connection. On SQLite the DSN
// forces BEGIN IMMEDIATE so the write lock is taken before the first read.
func (s *Scoped) Begin(ctx context.Context) (*Tx, error) {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin")
	}
	return &Tx{tx: tx, d: s.d}, nil
}

type Tx struct {
	tx   *sqlx.Tx
	d    Dialect
	done bool
}

func (t *Tx) Inventory() *InventoryRepo { return NewInventoryRepo(t.tx, t.d) }
func (t *Tx) Customers() *CustomerRepo  { return NewCustomerRepo(t.tx, t.d) }
func (t *Tx) Sales() *SaleRepo          { return NewSaleRepo(t.tx, t.d) }

func (t *Tx) Commit() error {
	t.done = true
	return errors.Wrap(t.tx.Commit(), "commit")
}

// Rollback is a no-op after Commit, so it can always be deferred.
func (t *Tx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Wrap(err, "rollback")
	}
	return nil
}

// insert runs an INSERT and returns the new surrogate key.
func insert(ctx context.Context, q Querier, d Dialect, query string, args ...any) (int64, error) {
	if d.Returning {
		var id int64
		err := q.QueryRowxContext(ctx, d.rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := q.ExecContext(ctx, d.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// affected maps a zero row count to notFound.
func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
