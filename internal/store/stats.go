package store

import (
	"context"
	"os"

	"github.com/rcliao/notes/internal/model"
)

// Stats holds store statistics.
type Stats struct {
	Path      string `json:"path"`
	Backend   string `json:"backend"`
	SizeBytes int64  `json:"size_bytes"`
	Notes     int    `json:"notes"`
	MaxID     int    `json:"max_id"`
}

// Stats returns store statistics.
func (s *Store) Stats(ctx context.Context) Stats {
	st := Stats{Path: s.path, Backend: s.backend.Kind()}

	if info, err := os.Stat(s.path); err == nil {
		st.SizeBytes = info.Size()
	}

	notes := s.Load(ctx)
	st.Notes = len(notes)
	st.MaxID = model.NextID(notes) - 1
	return st
}
