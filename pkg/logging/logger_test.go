package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacockIT/skyfuse/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("catalog", "CNS3").Int("stars", 3849).Msg("Imported catalog")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "CNS3", entry["catalog"])
	assert.Equal(t, float64(3849), entry["stars"])
	assert.Equal(t, "Imported catalog", entry["message"])
}

func TestDefaultIsUsable(t *testing.T) {
	logger := logging.Default()
	require.NotNil(t, logger)

	// Package-level helpers go through the same logger.
	logging.Debug().Msg("debug event")
	logging.Info().Msg("info event")
}

func TestSetDefault(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))
	logging.Info().Msg("replaced")

	assert.Contains(t, buf.String(), "replaced")
}

func TestFromContext(t *testing.T) {
	t.Run("nil context returns default", func(t *testing.T) {
		//nolint:staticcheck // explicitly testing nil-context behavior
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("empty context returns default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	})

	t.Run("round trip", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		got := logging.FromContext(ctx)
		got.Info().Msg("from context")
		assert.Contains(t, buf.String(), "from context")
	})
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)
	ctx := logging.WithLogger(context.Background(), &logger)

	ctx = logging.WithCatalog(ctx, "GJ accurate")
	ctx = logging.WithOperation(ctx, "import")

	logging.Ctx(ctx).Info().Msg("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GJ accurate", entry["catalog"])
	assert.Equal(t, "import", entry["operation"])
}
