package config

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/trsh/core/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := Initialize(tempDir, discardLogger()); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	assert.NoError(t, cfg.Validate())

	t.Run("HistoryPath", func(t *testing.T) {
		assert.Equal(t, filepath.Join(tempDir, "history"), cfg.HistoryPath())
	})

	t.Run("OpenEventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		require.NoError(t, err)
		err = logger.NewJsonLinesLogRecorder(fd).NewSession().Record(&logger.Builtin{Command: []string{"pwd"}})
		assert.NoError(t, err)
		fd.Close()
	})

	t.Run("ReadEventLog", func(t *testing.T) {
		fd, err := cfg.ReadEventLog()
		require.NoError(t, err)
		defer fd.Close()

		entries := 0
		assert.NoError(t, logger.ReadJSONLinesLog(fd, func(*logger.LogEntry) { entries++ }))
		assert.Equal(t, 1, entries)
	})
}

func TestInitialize_keepsExisting(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg/config.yaml", []byte("prompt: 'mine> '\nmax_args: 3\ncolor: never\nlog_level: info\n"), 0644))

	var logs bytes.Buffer
	cfg, err := initialize(fsys, "/cfg", log.New(&logs, "", 0))
	require.NoError(t, err)

	assert.Equal(t, "mine> ", cfg.Prompt)
	assert.Contains(t, logs.String(), "already exists")
}
