package repos

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"petshop/internal/config"
)

// Dialect carries what differs between the supported stores.
type Dialect struct {
	Driver string
	// Lock is appended to the stock read of a sale. SQLite has no row locks;
	// its DSN makes every transaction BEGIN IMMEDIATE instead.
	Lock      string
	Returning bool

	defaultURL string
	params     []param
	schema     []string
	open       func(cfg config.Config) (*sqlx.DB, error)
}

func (d Dialect) rebind(q string) string {
	return sqlx.Rebind(sqlx.BindType(d.Driver), q)
}

// param is a connection parameter appended when marker is absent from the URL.
type param struct {
	marker string
	value  func(cfg config.Config) string
}

var dialects = map[string]Dialect{}

func init() {
	dialects["sqlite"] = Dialect{
		Driver:     "sqlite",
		defaultURL: "petshop.db",
		params: []param{
			{"foreign_keys", func(config.Config) string { return "_pragma=foreign_keys(1)" }},
			{"busy_timeout", func(cfg config.Config) string {
				return fmt.Sprintf("_pragma=busy_timeout(%d)", cfg.DBBusyTimeoutMs)
			}},
			{"_txlock=", func(config.Config) string { return "_txlock=immediate" }},
		},
		schema: sqliteSchema,
		open: func(cfg config.Config) (*sqlx.DB, error) {
			return sqlx.Open("sqlite", DSN(cfg))
		},
	}
	dialects["mysql"] = Dialect{
		Driver:     "mysql",
		Lock:       " FOR UPDATE",
		defaultURL: "tcp(localhost:3306)/petshop",
		params: []param{
			{"charset=", func(config.Config) string { return "charset=utf8mb4" }},
			{"loc=", func(config.Config) string { return "loc=UTC" }},
			// UPDATE must report matched rows, not changed rows, or an
			// unchanged update would read as a missing id.
			{"clientFoundRows=", func(config.Config) string { return "clientFoundRows=true" }},
		},
		schema: mysqlSchema,
		open: func(cfg config.Config) (*sqlx.DB, error) {
			mc, err := MySQLConfig(cfg)
			if err != nil {
				return nil, err
			}
			conn, err := mysql.NewConnector(mc)
			if err != nil {
				return nil, err
			}
			return sqlx.NewDb(sql.OpenDB(conn), "mysql"), nil
		},
	}
	dialects["pgx"] = Dialect{
		Driver:     "pgx",
		Lock:       " FOR UPDATE",
		Returning:  true,
		defaultURL: "postgres://localhost:5432/petshop",
		params: []param{
			{"sslmode=", func(config.Config) string { return "sslmode=disable" }},
			{"timezone=", func(config.Config) string { return "timezone=UTC" }},
		},
		schema: postgresSchema,
		open: func(cfg config.Config) (*sqlx.DB, error) {
			pc, err := PgxConfig(cfg)
			if err != nil {
				return nil, err
			}
			return sqlx.NewDb(stdlib.OpenDB(*pc), "pgx"), nil
		},
	}
}

// DSN resolves DB_URL (or the driver default) and appends every required
// connection parameter that is not already present.
func DSN(cfg config.Config) string {
	d, ok := dialects[cfg.DBDriver]
	if !ok {
		return cfg.DBURL
	}
	url := cfg.DBURL
	if url == "" {
		url = d.defaultURL
	}
	for _, p := range d.params {
		if strings.Contains(url, p.marker) {
			continue
		}
		sep := "&"
		if !strings.Contains(url, "?") {
			sep = "?"
		}
		url += sep + p.value(cfg)
	}
	return url
}

// MySQLConfig parses the resolved DSN; DB_USER and DB_PASSWORD override the
// credentials it carries. The user falls back to root, the password never
// has a default.
func MySQLConfig(cfg config.Config) (*mysql.Config, error) {
	mc, err := mysql.ParseDSN(DSN(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.DBUser != "" {
		mc.User = cfg.DBUser
	}
	if mc.User == "" {
		mc.User = "root"
	}
	if cfg.DBPassword != "" {
		mc.Passwd = cfg.DBPassword
	}
	return mc, nil
}

// PgxConfig parses the resolved URL with the same override rules.
func PgxConfig(cfg config.Config) (*pgx.ConnConfig, error) {
	pc, err := pgx.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.DBUser != "" {
		pc.User = cfg.DBUser
	}
	if cfg.DBPassword != "" {
		pc.Password = cfg.DBPassword
	}
	return pc, nil
}
