package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/notes/internal/model"
)

// Codec converts a collection to and from its on-disk text form.
type Codec interface {
	Marshal(notes []model.Note) ([]byte, error)
	Unmarshal(data []byte) ([]model.Note, error)
	Kind() string
}

// JSONCodec stores the collection as an indented JSON array.
type JSONCodec struct{}

// Marshal encodes notes as an indented JSON array ending in a newline.
func (JSONCodec) Marshal(notes []model.Note) ([]byte, error) {
	b, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Unmarshal decodes a JSON array of notes.
func (JSONCodec) Unmarshal(data []byte) ([]model.Note, error) {
	var notes []model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return notes, nil
}

// Kind returns "json".
func (JSONCodec) Kind() string { return "json" }

// YAMLCodec stores the collection as a YAML sequence.
type YAMLCodec struct{}

// Marshal encodes notes as a YAML sequence with 2-space indent.
func (YAMLCodec) Marshal(notes []model.Note) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML sequence of notes.
func (YAMLCodec) Unmarshal(data []byte) ([]model.Note, error) {
	var notes []model.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return notes, nil
}

// Kind returns "yaml".
func (YAMLCodec) Kind() string { return "yaml" }

// FileBackend keeps the collection in a single text file.
type FileBackend struct {
	path  string
	codec Codec
}

// NewFileBackend returns a backend reading and writing path with codec.
func NewFileBackend(path string, codec Codec) *FileBackend {
	return &FileBackend{path: path, codec: codec}
}

// Kind returns the codec's kind.
func (b *FileBackend) Kind() string { return b.codec.Kind() }

// Load reads and decodes the whole file.
func (b *FileBackend) Load(ctx context.Context) ([]model.Note, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, err
	}
	return b.codec.Unmarshal(data)
}

// Save encodes notes and atomically replaces the file.
func (b *FileBackend) Save(ctx context.Context, notes []model.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := b.codec.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode %s: %w", b.codec.Kind(), err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	return writeFileAtomic(b.path, data, 0o644)
}

// writeFileAtomic writes data to a temp file next to filename and renames
// it into place, so readers see either the old or the new content.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpName := tempPath(filename)
	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}

// tempPath returns a unique hidden sibling of filename for staged writes.
func tempPath(filename string) string {
	dir, base := filepath.Split(filename)
	return filepath.Join(dir, "."+base+"."+ulid.Make().String()+".tmp")
}
