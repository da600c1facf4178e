package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/internal/domain"
	"petshop/internal/validate"
)

func TestEmail(t *testing.T) {
	for in, want := range map[string]bool{
		"a@b.co":            true,
		" alice@shop.test ": true,
		"no-at-sign":        false,
		"a@b":               false,
		"":                  false,
	} {
		_, ok := validate.Email(in)
		assert.Equal(t, want, ok, in)
	}
}

func TestPetForm(t *testing.T) {
	p, err := validate.Pet(validate.PetForm{Name: " Rex ", Species: "Dog", Age: "2", Price: "450.5", Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, int64(2), p.Age.Int64)
	assert.True(t, p.Age.Valid)
	assert.Equal(t, "450.50", p.Price.StringFixed(2))
	assert.Equal(t, int64(3), p.Quantity)

	p, err = validate.Pet(validate.PetForm{Name: "Goldie", Species: "Fish"})
	require.NoError(t, err)
	assert.False(t, p.Age.Valid)
	assert.True(t, p.Price.IsZero())

	bad := []validate.PetForm{
		{Species: "Dog"},
		{Name: "Rex"},
		{Name: "Rex", Species: "Dog", Age: "two"},
		{Name: "Rex", Species: "Dog", Price: "-1"},
		{Name: "Rex", Species: "Dog", Quantity: "1.5"},
	}
	for _, f := range bad {
		_, err := validate.Pet(f)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", f)
	}
}

func TestCustomerForm(t *testing.T) {
	c, err := validate.Customer(validate.CustomerForm{Name: "Alice", Phone: "555-0101"})
	require.NoError(t, err)
	assert.False(t, c.Email.Valid)
	assert.False(t, c.Address.Valid)

	c, err = validate.Customer(validate.CustomerForm{Name: "Alice", Phone: "555-0101", Email: "alice@shop.test", Address: "12 Oak Lane"})
	require.NoError(t, err)
	assert.Equal(t, "alice@shop.test", c.Email.String)
	assert.Equal(t, "12 Oak Lane", c.Address.String)

	for _, f := range []validate.CustomerForm{
		{Phone: "555"},
		{Name: "Alice"},
		{Name: "Alice", Phone: "call me"},
		{Name: "Alice", Phone: "555-0101", Email: "nope"},
	} {
		_, err := validate.Customer(f)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", f)
	}
}
