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

	"github.com/san-kum/boltgrid/internal/gridfile"
	"github.com/san-kum/boltgrid/internal/metrics"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Input     string             `json:"input"`
	Output    string             `json:"output"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Height    int                `json:"height"`
	Width     int                `json:"width"`
	Power     int                `json:"power"`
	Eta       int                `json:"eta"`
	Frames    int                `json:"frames"`
	Stalled   int                `json:"stalled"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes meta and the per-frame metric series of fs under a new run
// directory. ID and Timestamp are assigned here.
func (s *Store) Save(meta RunMetadata, fs *gridfile.FrameSet) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("run_%d", ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = ts
	meta.Frames = len(fs.Frames)
	meta.Height = fs.Height
	meta.Width = fs.Width

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	ms := metrics.Defaults()
	header := []string{"frame"}
	columns := make([][]float64, len(ms))
	for i, m := range ms {
		header = append(header, m.Name())
		columns[i] = metrics.Series(fs, m)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for f := range fs.Frames {
		row := []string{strconv.Itoa(f)}
		for _, col := range columns {
			row = append(row, strconv.FormatFloat(col[f], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns stored runs, oldest first.
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
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries returns the metric names and one value row per frame.
func (s *Store) LoadSeries(runID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return []string{}, [][]float64{}, nil
	}

	names := records[0][1:]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return names, rows, nil
}
