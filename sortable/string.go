package sortable

// String is a Sortable string using byte-wise order.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}
