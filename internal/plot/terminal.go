package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/mzsim/internal/sweep"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

type Options struct {
	Width  int
	Height int
	Color  bool
}

func DefaultOptions() Options {
	return Options{Width: 80, Height: 12, Color: true}
}

// Chart draws lines on one asciigraph canvas with a legend.
func Chart(caption string, lines []Line, opts Options) string {
	data := make([][]float64, len(lines))
	legends := make([]string, len(lines))
	for i, l := range lines {
		data[i] = l.Y
		legends[i] = l.Name
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	}
	if opts.Color {
		graphOpts = append(graphOpts,
			asciigraph.SeriesColors(seriesColors[:min(len(lines), len(seriesColors))]...),
			asciigraph.SeriesLegends(legends...),
		)
	}

	return asciigraph.PlotMany(data, graphOpts...)
}

// Scatter rasterizes (x, y) points onto a width x height character grid,
// drawing the axes where they cross the visible range.
func Scatter(xs, ys []float64, width, height int) string {
	if len(xs) == 0 || len(xs) != len(ys) || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := range canvas {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := range canvas[row] {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for i := range xs {
		col := int((xs[i] - minX) / rangeX * float64(width-1))
		row := height - 1 - int((ys[i]-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Render writes one panel to w, choosing a line chart or a scatter by kind.
func Render(w io.Writer, title, kind string, t *sweep.Table, opts Options) error {
	if IsScatter(kind) {
		xs, ys, err := Points(t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s (Re vs Im)\n%s\n", title, Scatter(xs, ys, opts.Width/2, opts.Height))
		return err
	}

	lines, err := Lines(t, Columns(kind)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n\n", Chart(fmt.Sprintf("%s vs %s", title, t.Names[0]), lines, opts))
	return err
}
