package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenListPet(t *testing.T) {
	a := newTestApp(t)

	code, body, h := a.do(t, "POST", "/api/pets", `{"name":"Rex","species":"Dog","quantity":5,"price":100.00}`)
	require.Equal(t, fiber.StatusCreated, code, body)
	assert.Equal(t, `{"status":"created","id":1}`, body)
	assert.Equal(t, "application/json", h.Get("Content-Type"))

	code, body, _ = a.do(t, "GET", "/api/pets", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, `[{"id":1,"name":"Rex","species":"Dog","breed":"","age":null,"price":100.00,"quantity":5,"stock":5}]`, body)

	pets := decodeList(t, body)
	require.Len(t, pets, 1)
	assert.Nil(t, pets[0]["age"])
}

func TestListPetsEmpty(t *testing.T) {
	a := newTestApp(t)
	code, body, _ := a.do(t, "GET", "/api/pets", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "[]", body)
}

func TestListPetsNewestFirstAndInStock(t *testing.T) {
	a := newTestApp(t)
	a.do(t, "POST", "/api/pets", `{"name":"Old","species":"Cat","quantity":0}`)
	a.do(t, "POST", "/api/pets", `{"name":"New","species":"Dog","stock":2}`)

	pets := decodeList(t, func() string { _, b, _ := a.do(t, "GET", "/api/pets/", ""); return b }())
	require.Len(t, pets, 2)
	assert.Equal(t, "New", pets[0]["name"])
	assert.Equal(t, float64(2), pets[0]["quantity"])

	_, body, _ := a.do(t, "GET", "/api/pets?in_stock=true", "")
	pets = decodeList(t, body)
	require.Len(t, pets, 1)
	assert.Equal(t, "New", pets[0]["name"])
}

func TestCreatePetFailsOpen(t *testing.T) {
	a := newTestApp(t)

	code, _, _ := a.do(t, "POST", "/api/pets", `{"name":"Rex","age":"old","price":"cheap","quantity":"lots"}`)
	require.Equal(t, fiber.StatusCreated, code)
	code, _, _ = a.do(t, "POST", "/api/pets", `not json at all`)
	require.Equal(t, fiber.StatusCreated, code)

	_, body, _ := a.do(t, "GET", "/api/pets", "")
	pets := decodeList(t, body)
	require.Len(t, pets, 2)
	rex := pets[1]
	assert.Equal(t, "Rex", rex["name"])
	assert.Nil(t, rex["age"])
	assert.Equal(t, float64(0), rex["price"])
	assert.Equal(t, float64(0), rex["quantity"])
}

func TestUpdatePetPriceOnly(t *testing.T) {
	a := newTestApp(t)
	a.do(t, "POST", "/api/pets", `{"name":"Rex","species":"Dog","breed":"Lab","age":3,"quantity":5,"price":100.00}`)

	code, body, _ := a.do(t, "PUT", "/api/pets/1", `{"price":9.99}`)
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, `{"status":"updated"}`, body)

	_, body, _ = a.do(t, "GET", "/api/pets", "")
	assert.Equal(t, `[{"id":1,"name":"Rex","species":"Dog","breed":"Lab","age":3,"price":9.99,"quantity":5,"stock":5}]`, body)
}

func TestUpdatePetErrors(t *testing.T) {
	a := newTestApp(t)
	a.do(t, "POST", "/api/pets", `{"name":"Rex","species":"Dog"}`)

	code, body, _ := a.do(t, "PUT", "/api/pets/1", ``)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, `{"error":"No updatable fields provided"}`, body)

	code, _, _ = a.do(t, "PUT", "/api/pets/1", `{"owner":"me"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body, _ = a.do(t, "PUT", "/api/pets/99", `{"name":"Ghost"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, `{"error":"Not found"}`, body)
}

func TestDeletePet(t *testing.T) {
	a := newTestApp(t)
	a.do(t, "POST", "/api/pets", `{"name":"Rex","species":"Dog"}`)

	code, _, _ := a.do(t, "DELETE", "/api/pets/42", "")
	assert.Equal(t, fiber.StatusNotFound, code)

	code, body, _ := a.do(t, "DELETE", "/api/pets/1", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, `{"status":"deleted"}`, body)

	_, body, _ = a.do(t, "GET", "/api/pets", "")
	assert.Equal(t, "[]", body)
}

func TestCustomersCRUD(t *testing.T) {
	a := newTestApp(t)

	code, _, _ := a.do(t, "POST", "/api/customers", `{"name":"Alice","phone":"555-0101","address":"1 Main St, Springfield"}`)
	require.Equal(t, fiber.StatusCreated, code)

	_, body, _ := a.do(t, "GET", "/api/customers", "")
	assert.Equal(t, `[{"id":1,"name":"Alice","email":null,"phone":"555-0101","address":"1 Main St, Springfield"}]`, body)

	code, _, _ = a.do(t, "PUT", "/api/customers/1", `{"email":"alice@shop.test"}`)
	require.Equal(t, fiber.StatusOK, code)
	custs := decodeList(t, func() string { _, b, _ := a.do(t, "GET", "/api/customers", ""); return b }())
	assert.Equal(t, "alice@shop.test", custs[0]["email"])

	code, _, _ = a.do(t, "PUT", "/api/customers/1", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	code, _, _ = a.do(t, "DELETE", "/api/customers/2", "")
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _, _ = a.do(t, "DELETE", "/api/customers/1", "")
	assert.Equal(t, fiber.StatusOK, code)
}

func TestDuplicateEmailIsServerError(t *testing.T) {
	a := newTestApp(t)
	a.do(t, "POST", "/api/customers", `{"name":"Alice","phone":"1","email":"a@b.co"}`)
	code, body, _ := a.do(t, "POST", "/api/customers", `{"name":"Alicia","phone":"2","email":"a@b.co"}`)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Contains(t, body, "UNIQUE")
}
