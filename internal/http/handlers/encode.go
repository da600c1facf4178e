package handlers

import (
	"petshop/internal/domain"
	"petshop/internal/flatjson"
)

// stock repeats quantity under the name older clients read.
func encodePet(p domain.Pet) string {
	return flatjson.NewObject().
		Int("id", p.ID).
		Str("name", p.Name).
		Str("species", p.Species).
		Str("breed", p.Breed).
		NullInt("age", p.Age).
		Money("price", p.Price).
		Int("quantity", p.Quantity).
		Int("stock", p.Quantity).
		String()
}

func encodeCustomer(c domain.Customer) string {
	return flatjson.NewObject().
		Int("id", c.ID).
		Str("name", c.Name).
		NullStr("email", c.Email).
		Str("phone", c.Phone).
		NullStr("address", c.Address).
		String()
}

func encodeSale(s domain.SaleRow) string {
	pet := flatjson.NewObject().
		Int("id", s.PetID).
		Str("name", s.PetName).
		Str("species", s.PetSpecies).
		Str("breed", s.PetBreed).
		String()
	customer := flatjson.NewObject().
		Int("id", s.CustomerID).
		Str("name", s.CustomerName).
		Str("phone", s.CustomerPhone).
		String()
	return flatjson.NewObject().
		Int("id", s.ID).
		Int("quantity", s.Quantity).
		Money("total_price", s.TotalPrice).
		Str("sale_date", s.SaleDate).
		Raw("pet", pet).
		Raw("customer", customer).
		String()
}

func encodeAll[T any](rows []T, enc func(T) string) string {
	items := make([]string, len(rows))
	for i, r := range rows {
		items[i] = enc(r)
	}
	return flatjson.Array(items)
}
