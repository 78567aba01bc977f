package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel/internal/logging"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestConsoleLogger(t *testing.T) {
	t.Run("writes level message and attrs", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := logging.New(logging.Options{Level: "info", Out: &buf, Now: fixedClock})
		require.NoError(t, err)

		logger.Info("catalog loaded", "movies", 3, "path", "/tmp/catalog file.yaml")

		line := buf.String()
		assert.Contains(t, line, " INFO catalog loaded")
		assert.Contains(t, line, "movies=3")
		assert.Contains(t, line, `path="/tmp/catalog file.yaml"`)
	})

	t.Run("drops records below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := logging.New(logging.Options{Level: "warn", Out: &buf})
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Debug("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("hoists component before the message", func(t *testing.T) {
		var buf bytes.Buffer
		base, err := logging.New(logging.Options{Level: "debug", Out: &buf})
		require.NoError(t, err)

		logging.NewComponentLogger(base, "store").Warn("save failed", logging.Error(errors.New("disk full")))

		assert.Contains(t, buf.String(), "WARN store: save failed")
		assert.Contains(t, buf.String(), `error="disk full"`)
	})

	t.Run("flattens groups with dotted keys", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := logging.New(logging.Options{Level: "info", Out: &buf})
		require.NoError(t, err)

		logger.WithGroup("report").Info("exported", "dir", "/tmp")

		assert.Contains(t, buf.String(), "report.dir=/tmp")
	})
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Out: &buf})
	require.NoError(t, err)

	logger.Debug("filter applied", "field", "Genre")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "debug", record["level"])
	assert.Equal(t, "filter applied", record["msg"])
	assert.Equal(t, "Genre", record["field"])
	assert.Contains(t, record, "ts")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})

	assert.Error(t, err)
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Error("nothing happens")
}
