package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/san-kum/mzsim/internal/config"
	"github.com/san-kum/mzsim/internal/experiment"
	"github.com/san-kum/mzsim/internal/sweep"
)

const metadataFile = "metadata.json"

type Store struct {
	baseDir string
	log     zerolog.Logger
}

func New(baseDir string, log zerolog.Logger) *Store {
	return &Store{
		baseDir: baseDir,
		log:     log.With().Str("component", "storage").Logger(),
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type PanelMetadata struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
	File  string `json:"file"`
	Rows  int    `json:"rows"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Mode      string             `json:"mode"`
	Timestamp time.Time          `json:"timestamp"`
	Config    *config.Config     `json:"config"`
	Metrics   map[string]float64 `json:"metrics"`
	Panels    []PanelMetadata    `json:"panels"`
}

// Panel is a stored series read back from disk.
type Panel struct {
	Title string
	Kind  string
	Table *sweep.Table
}

// Save writes metadata.json plus one CSV per panel and returns the run id.
func (s *Store) Save(cfg *config.Config, result *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", result.Mode, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Mode:      result.Mode,
		Timestamp: time.Now(),
		Config:    cfg,
		Metrics:   result.Metrics,
		Panels:    make([]PanelMetadata, len(result.Panels)),
	}

	for i, p := range result.Panels {
		name := fmt.Sprintf("series_%03d.csv", i)
		if err := writeTable(filepath.Join(runDir, name), p.Table); err != nil {
			return "", fmt.Errorf("write panel %d: %w", i, err)
		}
		meta.Panels[i] = PanelMetadata{Title: p.Title, Kind: p.Kind, File: name, Rows: p.Table.Len()}
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	s.log.Debug().Str("run", runID).Int("panels", len(meta.Panels)).Msg("saved run")
	return runID, nil
}

func writeTable(path string, t *sweep.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.Warn().Err(err).Str("run", entry.Name()).Msg("skipping unreadable run")
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPanels reads back every panel of a run in saved order.
func (s *Store) LoadPanels(runID string) ([]Panel, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	panels := make([]Panel, 0, len(meta.Panels))
	for _, pm := range meta.Panels {
		t, err := readTable(filepath.Join(s.baseDir, runID, pm.File))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", pm.File, err)
		}
		panels = append(panels, Panel{Title: pm.Title, Kind: pm.Kind, Table: t})
	}
	return panels, nil
}

func readTable(path string) (*sweep.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header")
	}

	names := records[0]
	columns := make([][]float64, len(names))
	for i := range columns {
		columns[i] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for j, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			columns[j] = append(columns[j], val)
		}
	}

	return sweep.NewTable(names, columns...)
}
