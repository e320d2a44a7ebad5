package feed

import "github.com/charmbracelet/infinite/internal/ui/list"

// Adapter maps list positions onto Rows. While more data may exist it
// reserves one extra position after the last row for the loading row.
type Adapter struct {
	rows *Rows
	// noMoreDataAvailable hides the loading row once the source is
	// exhausted.
	noMoreDataAvailable bool
}

var _ list.Adapter = (*Adapter)(nil)

// NewAdapter returns an adapter reading rows by reference.
func NewAdapter(rows *Rows) *Adapter {
	return &Adapter{rows: rows}
}

// ItemCount implements list.Adapter.
func (a *Adapter) ItemCount() int {
	if a.noMoreDataAvailable {
		return a.rows.Len()
	}
	return a.rows.Len() + 1
}

// RowKind implements list.Adapter.
func (a *Adapter) RowKind(position int) list.Kind {
	if position < a.rows.Len() {
		return list.KindContent
	}
	return list.KindLoading
}

// Bind implements list.Adapter. Loading rows carry no text.
func (a *Adapter) Bind(position int) list.Row {
	kind := a.RowKind(position)
	row := list.Row{Kind: kind, Position: position}
	if kind == list.KindContent {
		row.Text = a.rows.At(position)
	}
	return row
}

// SetExhausted sets whether the data source has run out. It takes effect on
// the list's next refresh.
func (a *Adapter) SetExhausted(exhausted bool) {
	a.noMoreDataAvailable = exhausted
}

// Exhausted reports whether the loading row is hidden.
func (a *Adapter) Exhausted() bool {
	return a.noMoreDataAvailable
}
