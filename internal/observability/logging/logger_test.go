package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger tests the creation of a new JSON logger
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "default log level (info)", logLevel: ""},
		{name: "debug log level", logLevel: "debug"},
		{name: "invalid log level defaults to info", logLevel: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				os.Setenv("LOG_LEVEL", tt.logLevel)
				defer os.Unsetenv("LOG_LEVEL")
			}

			logger := NewLogger()
			assert.NotNil(t, logger, "logger should not be nil")
		})
	}
}

func TestNewTextLogger(t *testing.T) {
	logger := NewTextLogger()
	assert.NotNil(t, logger, "logger should not be nil")
}

// TestWithComputationID tests adding the computation ID to a logger
func TestWithComputationID(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := WithNewComputationID(context.Background())
	id := ComputationID(ctx)
	require.NotEmpty(t, id, "computation ID should be generated")

	logger := WithComputationID(ctx, baseLogger)
	logger.Info("test message")

	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	assert.Equal(t, id, logEntry["computation_id"], "computation_id should match")
}

// TestWithComputationID_NoID tests behavior when no ID is in the context
func TestWithComputationID_NoID(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger := WithComputationID(context.Background(), baseLogger)
	logger.Info("test message")

	output := buf.String()
	assert.Contains(t, output, "test message", "message should be logged")
	assert.NotContains(t, output, "computation_id", "should not contain computation_id field")
}

func TestWithNewComputationID_Unique(t *testing.T) {
	ctx1 := WithNewComputationID(context.Background())
	ctx2 := WithNewComputationID(context.Background())
	assert.NotEqual(t, ComputationID(ctx1), ComputationID(ctx2),
		"each computation should get its own ID")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), custom)
	got := FromContext(ctx)
	assert.Same(t, custom, got, "should return the logger stored in context")

	got = FromContext(context.Background())
	assert.NotNil(t, got, "should fall back to the default logger")
}

// TestLogger_DebugLevelFiltering verifies that debug entries are dropped
// at info level.
func TestLogger_DebugLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger.Debug("this should not appear")
	logger.Info("this should appear")

	output := buf.String()
	assert.NotContains(t, output, "this should not appear", "debug message should be filtered")
	assert.Contains(t, output, "this should appear", "info message should be logged")
}
