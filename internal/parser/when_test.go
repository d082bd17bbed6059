package parser

import (
	"testing"
	"time"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhenRelative(t *testing.T) {
	before := time.Now()
	got, err := ParseWhen("+2d")
	require.NoError(t, err)
	assert.WithinDuration(t, before.AddDate(0, 0, 2), got, time.Minute)

	got, err = ParseWhen("+1w")
	require.NoError(t, err)
	assert.WithinDuration(t, before.AddDate(0, 0, 7), got, time.Minute)

	got, err = ParseWhen("+3h")
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(3*time.Hour), got, time.Minute)
}

func TestParseWhenISO(t *testing.T) {
	got, err := ParseWhen("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseWhenNaturalLanguage(t *testing.T) {
	got, err := ParseWhen("tomorrow")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), got, 25*time.Hour)
}

func TestParseWhenInvalid(t *testing.T) {
	_, err := ParseWhen("")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)

	_, err = ParseWhen("not a date at all xyzzy")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)

	_, err = ParseWhen("+0d")
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}
