package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", &buf, true)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("games", 3).Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "games=3")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("chatty", &bytes.Buffer{}, true)
	assert.Error(t, err)
}
