package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, time.RFC3339, cfg.TimeFormat)
}

func TestInitLogging_LevelFallback(t *testing.T) {
	cfg := DefaultLogConfig()
	cfg.Level = "not-a-level"
	InitLogging(cfg)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	cfg.Level = "debug"
	InitLogging(cfg)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	logger := WithComponent("aggregator")
	logger.Info().Msg("ready")
	assert.Contains(t, buf.String(), `"component":"aggregator"`)
}
