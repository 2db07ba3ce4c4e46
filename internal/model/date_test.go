package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatePlainDateAnchorsAtNoon(t *testing.T) {
	got, err := ParseDate("2024-05-20")
	require.NoError(t, err)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.May, got.Month())
	assert.Equal(t, 20, got.Day())
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, time.Local, got.Location())
}

func TestParseDateRFC3339(t *testing.T) {
	got, err := ParseDate("2024-05-20T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, got.UTC().Hour())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("20/05/2024")
	assert.Error(t, err)
}
