package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcntopo/config"
	"github.com/katalvlaran/dcntopo/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(config.LogConfig{Level: "warn", Format: logging.FormatJSON}, &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("dropped")
	log.Warn().Int("repairs", 3).Msg("stalled")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "warn", ev["level"])
	assert.Equal(t, "stalled", ev["message"])
	assert.EqualValues(t, 3, ev["repairs"])
	assert.Contains(t, ev, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(config.LogConfig{Format: logging.FormatConsole}, &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log.Info().Str("topology", "fattree").Msg("built")
	assert.Contains(t, buf.String(), "built")
	assert.Contains(t, buf.String(), "topology=fattree")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(config.LogConfig{Level: "loud"}, nil)
	require.Error(t, err)

	_, err = logging.New(config.LogConfig{Format: "xml"}, nil)
	require.Error(t, err)
}
