package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelWarn, cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestInit(t *testing.T) {
	t.Run("debug_flag", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})
		assert.True(t, Debug)
	})

	t.Run("info_clears_debug", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelInfo, Output: &buf})
		assert.False(t, Debug)
	})

	t.Run("nil_output_uses_stderr", func(t *testing.T) {
		Init(Config{Level: slog.LevelInfo})
		assert.NotNil(t, Logger())
	})
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		Info("test message", KeyStore, "schedule")
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("debug", func(t *testing.T) {
		buf.Reset()
		DebugLog("debug message")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("warn", func(t *testing.T) {
		buf.Reset()
		Warn("warn message")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		Error("error message")
		assert.Contains(t, buf.String(), "error message")
	})
}

func TestSessionAttached(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, JSON: true, Output: &buf})
	Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, SessionID(), line[KeySession])
	assert.Equal(t, SessionID(), SessionID())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})
	Info("hidden")
	assert.Empty(t, buf.String())
	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestMaskURL(t *testing.T) {
	masked := MaskURL("https://api.nasa.gov/planetary/apod?api_key=SECRETKEY123&thumbs=true")
	assert.NotContains(t, masked, "SECRETKEY123")
	assert.Contains(t, masked, "thumbs=true")
	assert.Contains(t, masked, "api.nasa.gov")

	plain := "https://example.com/a?b=c"
	assert.Equal(t, plain, MaskURL(plain))
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", MaskValue(""))
	assert.Equal(t, "***", MaskValue("abc"))
	assert.Equal(t, "********", MaskValue("a-very-long-secret"))
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dashboard.log")
	f, err := OpenLogFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Contains(t, LogPath(), "stardeck")
}

func TestForStore(t *testing.T) {
	cl := ForStore("habits")

	// Init after construction must still be honored.
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})

	cl.With(KeyID, 7).Info("toggled")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "habits", line[KeyStore])
	assert.Equal(t, float64(7), line[KeyID])
	assert.Equal(t, "toggled", line["msg"])
}
