package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/demo"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONExport(t *testing.T) {
	snap := demo.Seed(time.Now())

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, snap))

	var decoded model.Bundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Notes, demo.SeedNoteCount)
	assert.Len(t, decoded.Tasks, demo.SeedTaskCount)
	assert.Len(t, decoded.Events, demo.SeedEventCount)
}

func TestCSVExport(t *testing.T) {
	snap := demo.Seed(time.Now())

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, snap))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per record.
	require.Len(t, rows, 1+demo.SeedNoteCount+demo.SeedTaskCount+demo.SeedEventCount)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "note", rows[1][0])
	assert.Equal(t, "task", rows[1+demo.SeedNoteCount][0])
	assert.Equal(t, "event", rows[1+demo.SeedNoteCount+demo.SeedTaskCount][0])
}

func TestCSVEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, model.Bundle{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
