package plot

import (
	"errors"
	"fmt"

	"github.com/san-kum/mzsim/internal/sweep"
)

var ErrNoColumns = errors.New("plot: table has none of the requested columns")

// Line is one named y series aligned with an x axis.
type Line struct {
	Name string
	Y    []float64
}

var defaultColumns = map[string][]string{
	"time":     {"re_ein", "re_eout", "re_b1", "re_b3", "re_b4"},
	"transfer": {"intensity", "amplitude"},
	"dual":     {"re_ein", "re_eout", "re_iout", "re_qout"},
}

// Columns returns the columns drawn for a panel kind.
func Columns(kind string) []string {
	return defaultColumns[kind]
}

// IsScatter reports whether a panel kind is drawn as a point cloud.
func IsScatter(kind string) bool { return kind == "constellation" }

// Lines picks the named columns out of t. Missing names are skipped.
func Lines(t *sweep.Table, names ...string) ([]Line, error) {
	lines := make([]Line, 0, len(names))
	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		lines = append(lines, Line{Name: name, Y: col})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoColumns, names)
	}
	return lines, nil
}

// Points returns the Re/Im pair of a constellation table.
func Points(t *sweep.Table) (xs, ys []float64, err error) {
	xs, okX := t.Column("re_eout")
	ys, okY := t.Column("im_eout")
	if !okX || !okY {
		return nil, nil, fmt.Errorf("%w: re_eout, im_eout", ErrNoColumns)
	}
	return xs, ys, nil
}
