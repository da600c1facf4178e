// Package validate holds the checks the data-entry forms apply before
// calling a service. The HTTP API does not use them; it accepts defaults.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"petshop/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^[0-9+() .-]{3,30}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 150 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// Name trims s and rejects empty or over-long values.
func Name(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > max {
		return "", false
	}
	return s, true
}

// PetForm is the pet entry form as typed.
type PetForm struct {
	Name, Species, Breed string
	Age, Price, Quantity string
}

func Pet(f PetForm) (domain.Pet, error) {
	var p domain.Pet
	var ok bool
	if p.Name, ok = Name(f.Name, 100); !ok {
		return p, invalid("name is required")
	}
	if p.Species, ok = Name(f.Species, 50); !ok {
		return p, invalid("species is required")
	}
	p.Breed = strings.TrimSpace(f.Breed)

	if s := strings.TrimSpace(f.Age); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return p, invalid("age must be a whole number")
		}
		p.Age.Int64, p.Age.Valid = n, n > 0
	}
	price, err := decimal.NewFromString(orZero(f.Price))
	if err != nil || price.IsNegative() {
		return p, invalid("price must be a non-negative amount")
	}
	p.Price = price.Round(2)
	qty, err := strconv.ParseInt(orZero(f.Quantity), 10, 64)
	if err != nil || qty < 0 {
		return p, invalid("quantity must be a non-negative whole number")
	}
	p.Quantity = qty
	return p, nil
}

// CustomerForm is the customer entry form as typed.
type CustomerForm struct {
	Name, Email, Phone, Address string
}

func Customer(f CustomerForm) (domain.Customer, error) {
	var c domain.Customer
	var ok bool
	if c.Name, ok = Name(f.Name, 100); !ok {
		return c, invalid("name is required")
	}
	if strings.TrimSpace(f.Phone) == "" {
		return c, invalid("phone is required")
	}
	if c.Phone, ok = Phone(f.Phone); !ok {
		return c, invalid("phone has invalid characters")
	}
	if strings.TrimSpace(f.Email) != "" {
		if c.Email.String, ok = Email(f.Email); !ok {
			return c, invalid("email is not valid")
		}
		c.Email.Valid = true
	}
	if a := strings.TrimSpace(f.Address); a != "" {
		c.Address.String, c.Address.Valid = a, true
	}
	return c, nil
}

func orZero(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "0"
	}
	return s
}

func invalid(msg string) error { return errors.Wrap(domain.ErrValidation, msg) }
