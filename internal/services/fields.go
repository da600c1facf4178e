package services

import (
	"database/sql"

	"petshop/internal/flatjson"
	"petshop/internal/repos"
)

// field maps one request key to a column. Several keys may target the same
// column; the first one present wins.
type field struct {
	key, col string
	value    func(m map[string]string, key string) any
}

func text(m map[string]string, k string) any        { return m[k] }
func nullText(m map[string]string, k string) any    { return flatjson.NullStr(m, k) }
func integer(m map[string]string, k string) any     { return flatjson.Int(m, k) }
func money(m map[string]string, k string) any       { return flatjson.Money(m, k) }
func optionalAge(m map[string]string, k string) any { return Age(flatjson.Int(m, k)) }

var petFields = []field{
	{"name", "name", text},
	{"species", "species", text},
	{"breed", "breed", text},
	{"age", "age", optionalAge},
	{"price", "price", money},
	{"quantity", "quantity", integer},
	{"stock", "quantity", integer},
}

var customerFields = []field{
	{"name", "name", text},
	{"email", "email", nullText},
	{"phone", "phone", text},
	{"address", "address", nullText},
}

// assignments keeps only the keys present in the decoded body. Unknown keys
// are ignored.
func assignments(fields []field, m map[string]string) *repos.Assignments {
	a := &repos.Assignments{}
	seen := map[string]bool{}
	for _, f := range fields {
		if _, ok := m[f.key]; !ok || seen[f.col] {
			continue
		}
		seen[f.col] = true
		a.Set(f.col, f.value(m, f.key))
	}
	return a
}

// Age stores zero or negative ages as NULL.
func Age(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n > 0}
}
