package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/mzsim/internal/sweep"
)

const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 6 * vg.Inch
)

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Figure builds the gonum plot for one panel.
func Figure(title, kind string, t *sweep.Table) (*plot.Plot, error) {
	if IsScatter(kind) {
		xs, ys, err := Points(t)
		if err != nil {
			return nil, err
		}
		p := newPlot(title, "Re(Eout)", "Im(Eout)")
		s, err := plotter.NewScatter(xys(xs, ys))
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		return p, nil
	}

	lines, err := Lines(t, Columns(kind)...)
	if err != nil {
		return nil, err
	}

	p := newPlot(title, t.Names[0], "field")
	args := make([]interface{}, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, l.Name, xys(t.X(), l.Y))
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, fmt.Errorf("add lines: %w", err)
	}
	return p, nil
}

// Formats lists the image encodings accepted by WriteImage.
var Formats = []string{"png", "svg"}

// WriteImage encodes the panel figure to w as png or svg.
func WriteImage(w io.Writer, format, title, kind string, t *sweep.Table) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("plot: unsupported image format %q", format)
	}
	p, err := Figure(title, kind, t)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(imageWidth, imageHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveImage writes the figure to path, choosing the format from its extension.
func SaveImage(path, title, kind string, t *sweep.Table) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteImage(f, format, title, kind, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
