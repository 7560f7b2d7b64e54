package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(t *testing.T, e *LogEntry)
	}{
		{
			name:  "add field to empty entry",
			entry: &LogEntry{},
			key:   "sku",
			value: "WP-1093",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "WP-1093", e.Fields["sku"])
			},
		},
		{
			name:  "add field to existing fields",
			entry: &LogEntry{Fields: map[string]interface{}{"mode": "roll"}},
			key:   "quantity",
			value: float64(3),
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "roll", e.Fields["mode"])
				assert.Equal(t, float64(3), e.Fields["quantity"])
			},
		},
		{
			name:  "overwrite existing key",
			entry: &LogEntry{Fields: map[string]interface{}{"mode": "roll"}},
			key:   "mode",
			value: "package",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "package", e.Fields["mode"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{}
	result := entry.WithFields(map[string]interface{}{
		"mode": "tile",
		"sku":  "TILE-60x60",
	})

	assert.Same(t, entry, result)
	assert.Equal(t, "tile", entry.Fields["mode"])
	assert.Equal(t, "TILE-60x60", entry.Fields["sku"])

	entry.WithFields(map[string]interface{}{"mode": "package"})
	assert.Equal(t, "package", entry.Fields["mode"])
	assert.Len(t, entry.Fields, 2)
}
