package repos

import "strings"

// Assignments collects "column = ?" pairs for a partial UPDATE. Column names
// come from code, never from request input; values are always bound.
type Assignments struct {
	cols []string
	args []any
}

func (a *Assignments) Set(col string, v any) *Assignments {
	a.cols = append(a.cols, col)
	a.args = append(a.args, v)
	return a
}

func (a *Assignments) Len() int { return len(a.cols) }

// SQL renders UPDATE <table> SET ... WHERE id = ? with the id bound last.
func (a *Assignments) SQL(table string, id int64) (string, []any) {
	set := make([]string, len(a.cols))
	for i, c := range a.cols {
		set[i] = c + " = ?"
	}
	args := append(append([]any{}, a.args...), id)
	return "UPDATE " + table + " SET " + strings.Join(set, ", ") + " WHERE id = ?", args
}
