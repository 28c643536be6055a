package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/lottie2gif/internal/logging"
)

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")

	log, err := logging.New(logging.Options{File: path})
	require.NoError(t, err)

	log.Info("converting %s", "anim.json")
	log.Warn("skipped %s", "readme.txt")
	log.Debug("not emitted without verbose")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "[INFO] converting anim.json")
	assert.Contains(t, out, "[WARN] skipped readme.txt")
	assert.NotContains(t, out, "DEBUG")
}

func TestVerboseDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	log, err := logging.New(logging.Options{Verbose: true, File: path})
	require.NoError(t, err)
	log.Debug("worker count %d", 4)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] worker count 4")
}

func TestCloseWithoutFile(t *testing.T) {
	log, err := logging.New(logging.Options{})
	require.NoError(t, err)
	assert.NoError(t, log.Close())
	assert.NoError(t, log.Close())
}
