package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/track"
)

const (
	metadataFile  = "metadata.json"
	positionsFile = "positions.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

var header = []string{"time", "x", "y", "z", "vx", "vy", "vz", "distance", "converged"}

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

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID         string             `json:"id"`
	Body       string             `json:"body"`
	Relative   string             `json:"relative_to,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Start      float64            `json:"start"`
	Duration   float64            `json:"duration"`
	Step       float64            `json:"step"`
	Samples    int                `json:"samples"`
	Shortfalls int                `json:"shortfalls"`
	Catalog    string             `json:"catalog,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding metadata.json and positions.csv and
// returns the run id.
func (s *Store) Save(cfg track.Config, catalogName string, result *track.Result) (string, error) {
	now := s.now()
	runID := fmt.Sprintf("%s_%d", result.Body, now.UnixMilli())
	runDir := filepath.Join(s.baseDir, runID)
	for i := 1; exists(runDir); i++ {
		runID = fmt.Sprintf("%s_%d_%d", result.Body, now.UnixMilli(), i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Body:       result.Body,
		Relative:   result.Relative,
		Timestamp:  now,
		Start:      cfg.Start,
		Duration:   cfg.Duration,
		Step:       cfg.Step,
		Samples:    len(result.Samples),
		Shortfalls: result.Shortfalls,
		Catalog:    catalogName,
		Metrics:    result.Metrics,
	}
	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePositions(filepath.Join(runDir, positionsFile), result.Samples); err != nil {
		return "", err
	}
	return runID, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writePositions(path string, samples []track.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			format(smp.Time),
			format(smp.Position.X), format(smp.Position.Y), format(smp.Position.Z),
			format(smp.Velocity.X), format(smp.Velocity.Y), format(smp.Velocity.Z),
			format(smp.Distance),
			strconv.FormatBool(smp.Converged),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns all readable runs, oldest first.
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
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads positions.csv back. Malformed rows are skipped.
func (s *Store) LoadSamples(runID string) ([]track.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, positionsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []track.Sample{}, nil
	}

	samples := make([]track.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		smp, ok := parseRow(rec)
		if !ok {
			continue
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

func parseRow(rec []string) (track.Sample, bool) {
	if len(rec) < len(header) {
		return track.Sample{}, false
	}
	var vals [8]float64
	for i := range vals {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return track.Sample{}, false
		}
		vals[i] = v
	}
	converged, _ := strconv.ParseBool(rec[8])
	return track.Sample{
		Time:      vals[0],
		Position:  orbit.Vec3{X: vals[1], Y: vals[2], Z: vals[3]},
		Velocity:  orbit.Vec3{X: vals[4], Y: vals[5], Z: vals[6]},
		Distance:  vals[7],
		Converged: converged,
	}, true
}

// Delete removes a run directory.
func (s *Store) Delete(runID string) error {
	dir := filepath.Join(s.baseDir, runID)
	if !exists(filepath.Join(dir, metadataFile)) {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return os.RemoveAll(dir)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
