// Package flatjson is the request/response codec of the HTTP API.
//
// It only understands flat objects: string keys mapped to string or number
// leaves. Nested objects, arrays and unicode escapes are not supported on the
// decode side, and Decode never fails: malformed input degrades to a partial
// (possibly empty) mapping. Callers treat a missing key as "field not
// provided". Encoding is schema specific; handlers build each record with an
// Object and compose nested summaries with Raw.
package flatjson

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decode splits a flat object body into key/value strings.
func Decode(body []byte) map[string]string {
	m := map[string]string{}
	s := strings.TrimSpace(string(body))
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	for _, part := range splitTopLevel(s) {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		m[unquote(k)] = unquote(v)
	}
	return m
}

// splitTopLevel splits on commas that are not inside a double-quoted span.
// Backslashes are not special, so an escaped quote toggles the span like any
// other quote.
func splitTopLevel(s string) []string {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
			cur.WriteByte(ch)
		case ch == ',' && !inQuote:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Escape rewrites backslash, double quote and newline. Nothing else is escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

// Int reads key as an integer. Absent or unparsable values read as 0.
func Int(m map[string]string, key string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(m[key]), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Money reads key as a decimal amount. Absent or unparsable values read as 0.
func Money(m map[string]string, key string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(m[key]))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NullStr maps an absent key to NULL and a present one (even empty) to its value.
func NullStr(m map[string]string, key string) sql.NullString {
	v, ok := m[key]
	return sql.NullString{String: v, Valid: ok}
}

// Object renders one flat JSON object with fields in insertion order.
type Object struct {
	b strings.Builder
	n int
}

func NewObject() *Object { return &Object{} }

func (o *Object) key(k string) {
	if o.n > 0 {
		o.b.WriteByte(',')
	}
	o.n++
	o.b.WriteByte('"')
	o.b.WriteString(Escape(k))
	o.b.WriteString(`":`)
}

func (o *Object) Str(k, v string) *Object {
	o.key(k)
	o.b.WriteByte('"')
	o.b.WriteString(Escape(v))
	o.b.WriteByte('"')
	return o
}

func (o *Object) NullStr(k string, v sql.NullString) *Object {
	if !v.Valid {
		return o.Raw(k, "null")
	}
	return o.Str(k, v.String)
}

func (o *Object) Int(k string, v int64) *Object {
	o.key(k)
	o.b.WriteString(strconv.FormatInt(v, 10))
	return o
}

func (o *Object) NullInt(k string, v sql.NullInt64) *Object {
	if !v.Valid {
		return o.Raw(k, "null")
	}
	return o.Int(k, v.Int64)
}

// Money writes a currency amount with exactly two decimals.
func (o *Object) Money(k string, v decimal.Decimal) *Object {
	return o.Raw(k, v.StringFixed(2))
}

// Raw writes an already encoded value (a number literal, null, or a sub-object).
func (o *Object) Raw(k, encoded string) *Object {
	o.key(k)
	o.b.WriteString(encoded)
	return o
}

func (o *Object) String() string {
	return "{" + o.b.String() + "}"
}

// Array joins encoded items into a JSON array.
func Array(items []string) string {
	return "[" + strings.Join(items, ",") + "]"
}
