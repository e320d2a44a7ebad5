// Package feed holds the rows of an infinitely scrolling list and the
// adapter that exposes them, plus a trailing loading row, to a list.List.
package feed

// Rows is an append-only sequence of display strings.
type Rows struct {
	items []string
}

// NewRows returns rows holding a copy of items.
func NewRows(items ...string) *Rows {
	return &Rows{items: append([]string(nil), items...)}
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	return len(r.items)
}

// At returns the row at index i.
func (r *Rows) At(i int) string {
	return r.items[i]
}

// Append adds rows to the end.
func (r *Rows) Append(items ...string) {
	r.items = append(r.items, items...)
}
