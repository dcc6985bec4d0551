package store

import (
	"context"
	"fmt"

	"github.com/rcliao/notes/internal/model"
)

// Add appends a new note and returns it with its assigned id.
func (s *Store) Add(ctx context.Context, title, body string) (model.Note, error) {
	notes := s.Load(ctx)

	n := model.Note{
		ID:    model.NextID(notes),
		Title: title,
		Body:  body,
	}
	n.Stamp(s.now())
	notes = append(notes, n)

	if err := s.Save(ctx, notes); err != nil {
		return model.Note{}, fmt.Errorf("add note: %w", err)
	}
	return n, nil
}

// Remove deletes the note with the given id. It reports false, and writes
// nothing, when no such note exists.
func (s *Store) Remove(ctx context.Context, id int) (bool, error) {
	notes := s.Load(ctx)

	kept := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		s.logger.Debug("remove: note not found", "id", id)
		return false, nil
	}

	if err := s.Save(ctx, kept); err != nil {
		return false, fmt.Errorf("remove note %d: %w", id, err)
	}
	return true, nil
}

// Modify updates the supplied fields of the note with the given id and
// refreshes its timestamp, even when neither field is supplied. It reports
// false, and writes nothing, when no such note exists.
func (s *Store) Modify(ctx context.Context, id int, p ModifyParams) (model.Note, bool, error) {
	notes := s.Load(ctx)

	i := model.Index(notes, id)
	if i < 0 {
		s.logger.Debug("modify: note not found", "id", id)
		return model.Note{}, false, nil
	}

	n := &notes[i]
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Body != nil {
		n.Body = *p.Body
	}
	n.Stamp(s.now())

	if err := s.Save(ctx, notes); err != nil {
		return model.Note{}, false, fmt.Errorf("modify note %d: %w", id, err)
	}
	return *n, true, nil
}

// List returns every note in collection order. It never writes.
func (s *Store) List(ctx context.Context) []model.Note {
	return s.Load(ctx)
}

// Get returns the note with the given id.
func (s *Store) Get(ctx context.Context, id int) (model.Note, bool) {
	notes := s.Load(ctx)
	if i := model.Index(notes, id); i >= 0 {
		return notes[i], true
	}
	return model.Note{}, false
}
