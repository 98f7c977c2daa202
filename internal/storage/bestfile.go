package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
)

// DefaultBestPath is where the best score is kept unless overridden.
const DefaultBestPath = "~/.arcade/dodge_best.json"

// BestFile stores the best score as {"best": <number>}.
// Writes go through a temp file and a rename so a crash never leaves a
// truncated file behind.
type BestFile struct {
	path string
}

type bestDoc struct {
	Best float64 `json:"best"`
}

// NewBestFile creates a best score store at path (~ is expanded).
func NewBestFile(path string) (*BestFile, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &BestFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (b *BestFile) Path() string {
	return b.path
}

// LoadBest reads the stored best. A missing file is a best of 0.
func (b *BestFile) LoadBest() (float64, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best file: %w", err)
	}

	var doc bestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("storage: cannot parse best file %s: %w", b.path, err)
	}
	if math.IsNaN(doc.Best) || doc.Best < 0 {
		return 0, fmt.Errorf("storage: invalid best score %v in %s", doc.Best, b.path)
	}
	return doc.Best, nil
}

// SaveBest writes best rounded to three decimals.
func (b *BestFile) SaveBest(best float64) error {
	data, err := json.Marshal(bestDoc{Best: math.Round(best*1000) / 1000})
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".dodge_best-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write best file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write best file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace best file: %w", err)
	}
	return nil
}
