package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/notes/internal/model"
)

// brokenCodec decodes like JSONCodec but refuses to encode.
type brokenCodec struct {
	JSONCodec
}

func (brokenCodec) Marshal([]model.Note) ([]byte, error) {
	return nil, errors.New("encode refused")
}

func TestFailedSaveKeepsFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.json")

	seed, err := Open(path)
	require.NoError(t, err)
	kept, err := seed.Add(ctx, "keep me", "")
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	s, err := Open(path, WithBackend(NewFileBackend(path, brokenCodec{})))
	require.NoError(t, err)

	_, err = s.Add(ctx, "lost", "")
	assert.ErrorContains(t, err, "encode refused")
	_, _, err = s.Modify(ctx, kept.ID, ModifyParams{Title: ptr("changed")})
	assert.Error(t, err)

	assert.Equal(t, []model.Note{kept}, s.Load(ctx))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFailedSaveKeepsSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "notes.db")

	kept, err := s.Add(ctx, "keep me", "")
	require.NoError(t, err)

	dup := []model.Note{kept, {ID: kept.ID, Title: "same id"}}
	err = s.Save(ctx, dup)
	assert.ErrorContains(t, err, "insert note")

	assert.Equal(t, []model.Note{kept}, s.Load(ctx))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp db left behind")
}

func TestSQLiteCorruptFileIsReplaced(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "notes.db")
	require.NoError(t, os.WriteFile(s.Path(), []byte("definitely not a sqlite database, just some text padding it out"), 0o644))

	n, err := s.Add(ctx, "fresh", "start")
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)

	assert.Equal(t, []model.Note{n}, s.Load(ctx))
}

func TestSQLitePathWithQuestionMark(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "what?.db"))
	assert.ErrorContains(t, err, "must not contain")

	// file backends take the name literally
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "what?.json"))
	require.NoError(t, err)
	n, err := s.Add(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []model.Note{n}, s.Load(ctx))
}
