package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/mzsim/internal/sweep"
)

type ExportPanel struct {
	Title   string               `json:"title"`
	Kind    string               `json:"kind"`
	Columns map[string][]float64 `json:"columns"`
}

type ExportData struct {
	ID      string             `json:"id"`
	Mode    string             `json:"mode"`
	Metrics map[string]float64 `json:"metrics"`
	Panels  []ExportPanel      `json:"panels"`
}

// ExportJSON writes a run's metadata and every panel column as one document.
func ExportJSON(w io.Writer, meta *RunMetadata, panels []Panel) error {
	data := ExportData{
		ID:      meta.ID,
		Mode:    meta.Mode,
		Metrics: meta.Metrics,
		Panels:  make([]ExportPanel, len(panels)),
	}

	for i, p := range panels {
		cols := make(map[string][]float64, len(p.Table.Names))
		for j, name := range p.Table.Names {
			cols[name] = p.Table.Columns[j]
		}
		data.Panels[i] = ExportPanel{Title: p.Title, Kind: p.Kind, Columns: cols}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes a header row of column names followed by one row per sample.
func WriteCSV(w io.Writer, t *sweep.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names); err != nil {
		return err
	}

	row := make([]string, len(t.Columns))
	for i := 0; i < t.Len(); i++ {
		for j, col := range t.Columns {
			row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
