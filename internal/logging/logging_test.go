package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", FormatJSON, &buf)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("user", "u1").Msg("rendered")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "rendered", entry["message"])
	assert.Equal(t, "u1", entry["user"])
	assert.Equal(t, "mathskills", entry["app"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", FormatConsole, &buf)
	require.NoError(t, err)

	log.Debug().Int("store_reads", 7).Msg("pass done")
	assert.Contains(t, buf.String(), "pass done")
	assert.Contains(t, buf.String(), "store_reads=7")
}

func TestNew_Errors(t *testing.T) {
	_, err := New("nope", FormatJSON, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
