package list

// Kind is the kind of a list row.
type Kind uint8

// Possible Kind values.
const (
	// KindContent is a row backed by an entry of the adapter's dataset.
	KindContent Kind = iota
	// KindLoading is the synthetic trailing row shown while more data may
	// exist.
	KindLoading
)

func (k Kind) String() string {
	switch k {
	case KindContent:
		return "content"
	case KindLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Row is a position bound to its data. The kind is resolved once, when the
// row is bound; loading rows carry no text.
type Row struct {
	Kind     Kind
	Position int
	Text     string
}

// Adapter supplies the rows of a List.
type Adapter interface {
	// ItemCount returns the number of rows, including any trailing loading
	// row.
	ItemCount() int

	// RowKind returns the kind of the row at position.
	RowKind(position int) Kind

	// Bind returns the row at position. Positions are always within
	// [0, ItemCount()).
	Bind(position int) Row
}

// Renderer renders a bound row for the given width. selected is set for the
// selected row of a focused list.
type Renderer func(row Row, width int, selected bool) string

// PlainRenderer renders content rows as their text and loading rows as an
// ellipsis.
func PlainRenderer(row Row, _ int, _ bool) string {
	if row.Kind == KindLoading {
		return "..."
	}
	return row.Text
}
