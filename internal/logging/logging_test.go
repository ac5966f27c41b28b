package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookctl/internal/config"
	"github.com/blackwell-systems/bookctl/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bookctl.log")
	log, closer, err := logging.New(config.LogConfig{Level: "debug", File: path, Format: "json"}, "1.0.0")
	require.NoError(t, err)

	log.WithField("book_id", 7).Debug("loaded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, float64(7), entry["book_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookctl.log")
	log, closer, err := logging.New(config.LogConfig{Level: "warn", File: path}, "dev")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, closer.Close())

	data, _ := os.ReadFile(path)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := logging.New(config.LogConfig{Level: "loud"}, "dev")
	assert.Error(t, err)
}

func TestNew_NoFile(t *testing.T) {
	log, closer, err := logging.New(config.LogConfig{}, "dev")
	require.NoError(t, err)
	log.Info("dropped")
	assert.NoError(t, closer.Close())
}
