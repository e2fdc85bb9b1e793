package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/fluentstr/internal/config"
	"github.com/Gobd/fluentstr/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Str("step", "trim").Msg("applied")
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"step":"trim"`)
	assert.Contains(t, buf.String(), `"message":"applied"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LogConfig{Level: "debug", Format: "console", NoColor: true}, &buf)

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LogConfig{Level: "loud", Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
