package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"petshop/internal/config"
	"petshop/internal/domain"
	"petshop/internal/repos"
	"petshop/internal/services"
)

func openStore(t *testing.T) (*repos.Provider, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "petshop.db")
	p, err := repos.Open(config.Config{
		DBDriver:        "sqlite",
		DBURL:           path,
		DBMaxOpen:       10,
		DBBusyTimeoutMs: 10000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p, path
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func addPet(t *testing.T, p *repos.Provider, name, price string, qty int64) int64 {
	t.Helper()
	id, err := services.NewPetService(p).Create(context.Background(), domain.Pet{
		Name: name, Species: "Dog", Price: money(price), Quantity: qty,
	})
	require.NoError(t, err)
	return id
}

func addCustomer(t *testing.T, p *repos.Provider, name string) int64 {
	t.Helper()
	id, err := services.NewCustomerService(p).Create(context.Background(), domain.Customer{Name: name, Phone: "555-0100"})
	require.NoError(t, err)
	return id
}

func stockOf(t *testing.T, p *repos.Provider, id int64) int64 {
	t.Helper()
	pet, err := services.NewPetService(p).Get(context.Background(), id)
	require.NoError(t, err)
	return pet.Quantity
}
