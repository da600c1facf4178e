package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"petshop/internal/domain"
	"petshop/internal/services"
	"petshop/internal/validate"
)

func (r *runner) initDB(c *cli.Context) error {
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	if c.Bool("seed") {
		if err := store.Seed(c.Context); err != nil {
			return err
		}
	}
	fmt.Fprintf(c.App.Writer, "schema ready (%s)\n", store.Dialect().Driver)
	return nil
}

func (r *runner) addPet(c *cli.Context) error {
	p, err := validate.Pet(validate.PetForm{
		Name:     c.String("name"),
		Species:  c.String("species"),
		Breed:    c.String("breed"),
		Age:      c.String("age"),
		Price:    c.String("price"),
		Quantity: c.String("quantity"),
	})
	if err != nil {
		return err
	}
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := services.NewPetService(store).Create(c.Context, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "pet %d added\n", id)
	return nil
}

func (r *runner) addCustomer(c *cli.Context) error {
	cust, err := validate.Customer(validate.CustomerForm{
		Name:    c.String("name"),
		Email:   c.String("email"),
		Phone:   c.String("phone"),
		Address: c.String("address"),
	})
	if err != nil {
		return err
	}
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := services.NewCustomerService(store).Create(c.Context, cust)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "customer %d added\n", id)
	return nil
}

func (r *runner) quote(c *cli.Context) error {
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	q, err := services.NewQuoteService(store).Price(c.Context, c.Int64("pet"), c.Int64("quantity"))
	if err != nil {
		return err
	}
	stock := "in stock"
	if !q.Available {
		stock = fmt.Sprintf("only %d in stock", q.Pet.Quantity)
	}
	fmt.Fprintf(c.App.Writer, "%s x%d = %s (%s)\n", q.Pet.Name, q.Quantity, q.Total.StringFixed(2), stock)
	return nil
}

// sell submits the given total, or the quoted one when --total is omitted.
func (r *runner) sell(c *cli.Context) error {
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	in := services.SaleInput{
		PetID:      c.Int64("pet"),
		CustomerID: c.Int64("customer"),
		Quantity:   c.Int64("quantity"),
	}
	if s := c.String("total"); s != "" {
		if in.TotalPrice, err = decimal.NewFromString(s); err != nil {
			return errors.Wrap(domain.ErrValidation, "total must be an amount")
		}
	} else {
		q, err := services.NewQuoteService(store).Price(c.Context, in.PetID, in.Quantity)
		if err != nil {
			return err
		}
		in.TotalPrice = q.Total
	}

	sale, err := services.NewSaleService(store).Record(c.Context, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "sale %d recorded: %d units, total %s\n", sale.ID, sale.Quantity, sale.TotalPrice.StringFixed(2))
	return nil
}

func (r *runner) sales(c *cli.Context) error {
	store, err := r.open()
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := services.NewSaleService(store).List(c.Context)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPET\tCUSTOMER\tQTY\tTOTAL")
	for _, s := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s (%s)\t%s\t%d\t%s\n",
			s.ID, s.SaleDate, s.PetName, s.PetSpecies, s.CustomerName, s.Quantity, s.TotalPrice.StringFixed(2))
	}
	return w.Flush()
}
