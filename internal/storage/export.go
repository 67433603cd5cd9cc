package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/orrery/internal/track"
)

type ExportData struct {
	Run        RunMetadata  `json:"run"`
	Times      []float64    `json:"times"`
	Positions  [][3]float64 `json:"positions"`
	Velocities [][3]float64 `json:"velocities"`
	Distances  []float64    `json:"distances"`
}

func NewExportData(meta RunMetadata, samples []track.Sample) ExportData {
	data := ExportData{
		Run:        meta,
		Times:      make([]float64, len(samples)),
		Positions:  make([][3]float64, len(samples)),
		Velocities: make([][3]float64, len(samples)),
		Distances:  make([]float64, len(samples)),
	}
	for i, s := range samples {
		data.Times[i] = s.Time
		data.Positions[i] = [3]float64{s.Position.X, s.Position.Y, s.Position.Z}
		data.Velocities[i] = [3]float64{s.Velocity.X, s.Velocity.Y, s.Velocity.Z}
		data.Distances[i] = s.Distance
	}
	return data
}

// ExportJSON writes a stored run as one indented JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(*meta, samples))
}

func (s *Store) ExportJSONFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(f, runID)
}
