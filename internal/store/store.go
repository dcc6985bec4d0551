// Package store provides the note store and its backends.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/rcliao/notes/internal/model"
)

// Backend reads and writes the whole note collection.
type Backend interface {
	// Load returns the persisted collection in insertion order.
	Load(ctx context.Context) ([]model.Note, error)

	// Save replaces the persisted collection with notes.
	Save(ctx context.Context, notes []model.Note) error

	// Kind names the backend, e.g. "json" or "sqlite".
	Kind() string
}

// ModifyParams holds the optional fields of a modify. A nil field is left
// untouched.
type ModifyParams struct {
	Title *string
	Body  *string
}

// Store is the note store. Every operation reloads the collection from the
// backend; nothing is cached between calls.
type Store struct {
	path    string
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBackend overrides the backend chosen from the path extension.
func WithBackend(b Backend) Option {
	return func(s *Store) {
		if b != nil {
			s.backend = b
		}
	}
}

// Open returns a store backed by the file at path. The backend is picked
// from the extension: .yaml/.yml for YAML, .db/.sqlite for SQLite, JSON
// otherwise. Open does not touch the filesystem.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is empty")
	}

	s := &Store{
		path:   path,
		logger: slog.Default(),
		now:    time.Now,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s.backend = NewFileBackend(path, YAMLCodec{})
	case ".db", ".sqlite", ".sqlite3":
		// the driver reads everything after '?' as connection options
		if strings.ContainsRune(path, '?') {
			return nil, fmt.Errorf("sqlite store path %q must not contain '?'", path)
		}
		s.backend = NewSQLiteBackend(path)
	default:
		s.backend = NewFileBackend(path, JSONCodec{})
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the location of the backing store.
func (s *Store) Path() string {
	return s.path
}

// Load returns the collection. A missing or unreadable store is treated as
// an empty collection and never reported as an error.
func (s *Store) Load(ctx context.Context) []model.Note {
	notes, err := s.backend.Load(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("store not found, starting empty", "path", s.path)
		} else {
			s.logger.Warn("store unreadable, treating as empty", "path", s.path, "error", err)
		}
		return []model.Note{}
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes
}

// Save writes the full collection, replacing whatever was stored.
func (s *Store) Save(ctx context.Context, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	if err := s.backend.Save(ctx, notes); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	s.logger.Debug("store saved", "path", s.path, "backend", s.backend.Kind(), "notes", len(notes))
	return nil
}
