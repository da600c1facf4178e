package domain

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type Pet struct {
	ID       int64           `db:"id"`
	Name     string          `db:"name"`
	Species  string          `db:"species"`
	Breed    string          `db:"breed"`
	Age      sql.NullInt64   `db:"age"`
	Price    decimal.Decimal `db:"price"`
	Quantity int64           `db:"quantity"` // stock
}

type Customer struct {
	ID      int64          `db:"id"`
	Name    string         `db:"name"`
	Email   sql.NullString `db:"email"`
	Phone   string         `db:"phone"`
	Address sql.NullString `db:"address"`
}

// Sale is append-only; TotalPrice is whatever the caller submitted.
type Sale struct {
	ID         int64           `db:"id"`
	PetID      int64           `db:"pet_id"`
	CustomerID int64           `db:"customer_id"`
	Quantity   int64           `db:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price"`
	SaleDate   string          `db:"sale_date"`
}

// SaleRow is a sale joined with the pet and customer it references.
type SaleRow struct {
	Sale
	PetName       string `db:"pet_name"`
	PetSpecies    string `db:"pet_species"`
	PetBreed      string `db:"pet_breed"`
	CustomerName  string `db:"customer_name"`
	CustomerPhone string `db:"customer_phone"`
}
