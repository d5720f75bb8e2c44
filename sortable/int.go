package sortable

// Int is a Sortable int. Convert back with int(v).
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}
