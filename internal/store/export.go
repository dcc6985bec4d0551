package store

import (
	"context"
	"fmt"

	"github.com/rcliao/notes/internal/model"
)

// Export returns the whole collection.
func (s *Store) Export(ctx context.Context) []model.Note {
	return s.Load(ctx)
}

// Import appends notes to the collection. Each imported note gets a fresh
// id; an empty UpdatedAt is stamped with the current time. Nothing is
// written when notes is empty.
func (s *Store) Import(ctx context.Context, notes []model.Note) (int, error) {
	if len(notes) == 0 {
		return 0, nil
	}

	existing := s.Load(ctx)
	next := model.NextID(existing)
	for _, n := range notes {
		n.ID = next
		next++
		if n.UpdatedAt == "" {
			n.Stamp(s.now())
		}
		existing = append(existing, n)
	}

	if err := s.Save(ctx, existing); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	return len(notes), nil
}
