package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"petshop/internal/config"
	"petshop/internal/http/handlers"
	applog "petshop/internal/log"
	"petshop/internal/repos"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("petshop")
	}
}

// runner carries the resolved configuration into every command.
type runner struct {
	cfg config.Config
}

func newApp() *cli.App {
	r := &runner{}
	return &cli.App{
		Name:  "petshop",
		Usage: "pet shop inventory, customers and sales",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "HTTP port (overrides PORT)"},
			&cli.StringFlag{Name: "db-driver", Usage: "sqlite, mysql or pgx (overrides DB_DRIVER)"},
			&cli.StringFlag{Name: "db-url", Usage: "store address (overrides DB_URL)"},
		},
		Before: r.load,
		Action: r.serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: r.serve,
			},
			{
				Name:  "init-db",
				Usage: "create the schema",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "seed", Usage: "insert demo pets and customers into an empty store"},
				},
				Action: r.initDB,
			},
			{
				Name:  "add-pet",
				Usage: "add a pet to the inventory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "species", Required: true},
					&cli.StringFlag{Name: "breed"},
					&cli.StringFlag{Name: "age"},
					&cli.StringFlag{Name: "price", Value: "0"},
					&cli.StringFlag{Name: "quantity", Value: "0"},
				},
				Action: r.addPet,
			},
			{
				Name:  "add-customer",
				Usage: "add a customer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "phone", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "address"},
				},
				Action: r.addCustomer,
			},
			{
				Name:  "quote",
				Usage: "price a sale without recording it",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "pet", Required: true},
					&cli.Int64Flag{Name: "quantity", Value: 1},
				},
				Action: r.quote,
			},
			{
				Name:  "sell",
				Usage: "record a sale",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "pet", Required: true},
					&cli.Int64Flag{Name: "customer", Required: true},
					&cli.Int64Flag{Name: "quantity", Value: 1},
					&cli.StringFlag{Name: "total", Usage: "total price; defaults to the quoted price"},
				},
				Action: r.sell,
			},
			{
				Name:   "sales",
				Usage:  "print the sales report",
				Action: r.sales,
			},
		},
	}
}

// load reads the environment, applies flag overrides and sets up logging.
func (r *runner) load(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("db-driver") {
		cfg.DBDriver = c.String("db-driver")
	}
	if c.IsSet("db-url") {
		cfg.DBURL = c.String("db-url")
	}
	if err := applog.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		logrus.WithError(err).Warn("log.file.open")
	}
	r.cfg = cfg
	return nil
}

func (r *runner) open() (*repos.Provider, error) {
	return repos.Open(r.cfg)
}

func (r *runner) serve(c *cli.Context) error {
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	app := handlers.NewApp(r.cfg, handlers.NewDeps(store))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		applog.Info(nil, "server.start", map[string]any{"port": r.cfg.Port, "db_driver": r.cfg.DBDriver})
		return app.Listen(":" + r.cfg.Port)
	})
	g.Go(func() error {
		<-ctx.Done()
		applog.Info(nil, "server.stop", nil)
		return app.ShutdownWithTimeout(10 * time.Second)
	})
	return g.Wait()
}
