package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Provider supplies content snapshots. The engine treats snapshots as
// read-only; Load is the only way content enters the space
type Provider interface {
	Load() (*Snapshot, error)
}

// FileProvider reads a snapshot from a JSON export on disk
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Load parses the snapshot file and assigns ids to gallery items that
// arrived without one, so pointer tracking has a stable key per item
func (p *FileProvider) Load() (*Snapshot, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", p.Path, err)
	}

	for i := range snap.Gallery {
		if snap.Gallery[i].ID == "" {
			snap.Gallery[i].ID = uuid.NewString()
		}
	}

	return &snap, nil
}
