package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*3600)
	log := NewWithWriter(&buf, "info", loc)

	log.Info("word_added", zap.String("word", "cat"), zap.Int64("user_id", 3))
	log.Debug("dropped")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "word_added", entry["msg"])
	assert.Equal(t, "cat", entry["word"])
	assert.Equal(t, float64(3), entry["user_id"])

	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "error", nil)

	log.Warn("ignored")
	assert.Zero(t, buf.Len())

	log.Error("kept")
	assert.Contains(t, buf.String(), `"kept"`)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Not/AZone"))
	assert.Equal(t, "UTC", Location("UTC").String())
}
