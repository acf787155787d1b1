package sweep

import "fmt"

// Table is a column view of a series: Names[0]/Columns[0] is the x axis.
type Table struct {
	Names   []string
	Columns [][]float64
}

// NewTable checks that every column has the same length as the first.
func NewTable(names []string, columns ...[]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrDimensionMismatch, len(names), len(columns))
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrEmptyGrid)
	}
	n := len(columns[0])
	for i, c := range columns {
		if len(c) != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrDimensionMismatch, names[i], len(c), n)
		}
	}
	return &Table{Names: names, Columns: columns}, nil
}

func mustTable(names []string, columns ...[]float64) *Table {
	t, err := NewTable(names, columns...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

func (t *Table) X() []float64 { return t.Columns[0] }

func (t *Table) Column(name string) ([]float64, bool) {
	for i, n := range t.Names {
		if n == name {
			return t.Columns[i], true
		}
	}
	return nil, false
}

// Real projects a complex series onto its real parts.
func Real(zs []complex128) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = real(z)
	}
	return out
}

func Imag(zs []complex128) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = imag(z)
	}
	return out
}
