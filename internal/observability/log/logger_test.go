package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type label string

func (l label) String() string { return string(l) }

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for input, want := range tests {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestLoggerWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelDebug)

	logger.With(String("body", "earth")).Info("loaded",
		Float64("mass", 5.97),
		Int("index", 2),
		Bool("moving", true),
		Stringer("velocity", label("[1 2 3]")),
		Error(errors.New("boom")),
		Any("tags", []string{"planet"}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "loaded", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "earth", fields["body"])
	assert.Equal(t, 5.97, fields["mass"])
	assert.Equal(t, int64(2), fields["index"])
	assert.Equal(t, true, fields["moving"])
	assert.Equal(t, "[1 2 3]", fields["velocity"])
	assert.Equal(t, "boom", fields["error"])
}

func TestSetLevelFiltersEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelInfo)

	logger.Debug("hidden")
	assert.Equal(t, 0, logs.Len())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug("shown")
	assert.Equal(t, 1, logs.Len())

	logger.SetLevel(LevelError)
	logger.Warn("hidden")
	logger.Error("shown")
	assert.Equal(t, 2, logs.Len())
}

func TestNewBuildsStderrLogger(t *testing.T) {
	logger := New(LevelWarn)
	assert.Equal(t, LevelWarn, logger.GetLevel())

	child := logger.With(String("component", "test"))
	child.SetLevel(LevelError)
	assert.Equal(t, LevelError, logger.GetLevel())
}
