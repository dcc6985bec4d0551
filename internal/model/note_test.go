package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		notes []Note
		want  int
	}{
		{"empty", nil, 1},
		{"sequential", []Note{{ID: 1}, {ID: 2}}, 3},
		{"gap after remove", []Note{{ID: 2}, {ID: 5}}, 6},
		// externally reordered file: last element is not the max
		{"max not last", []Note{{ID: 7}, {ID: 3}}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.notes))
		})
	}
}

func TestIndex(t *testing.T) {
	notes := []Note{{ID: 4}, {ID: 9}}
	assert.Equal(t, 1, Index(notes, 9))
	assert.Equal(t, -1, Index(notes, 1))
	assert.Equal(t, -1, Index(nil, 1))
}

func TestStamp(t *testing.T) {
	var n Note
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	n.Stamp(at)
	assert.Equal(t, "2024-03-09 14:05:07", n.UpdatedAt)
}
