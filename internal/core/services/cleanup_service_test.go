package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupSweep(t *testing.T) {
	storage := newTestStorage(t)
	svc := NewCleanupService(storage)

	tempDir := storage.TempDir()
	require.NoError(t, os.MkdirAll(tempDir, 0o755))

	oldFile := filepath.Join(tempDir, "abandoned-upload")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0o644))
	stale := time.Now().Add(-25 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	freshFile := filepath.Join(tempDir, "in-flight-upload")
	require.NoError(t, os.WriteFile(freshFile, []byte("y"), 0o644))

	svc.sweep()

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err), "stale temp file should be removed")

	_, err = os.Stat(freshFile)
	assert.NoError(t, err, "fresh temp file should survive")
}

func TestCleanupStart_SchedulesSweep(t *testing.T) {
	storage := newTestStorage(t)
	svc := NewCleanupService(storage)

	svc.Start()
	defer svc.Stop()

	// A bad cron spec would leave nothing scheduled
	assert.Len(t, svc.cron.Entries(), 1)
}

func TestCleanupSweep_MissingTempDir(t *testing.T) {
	storage := newTestStorage(t)
	svc := NewCleanupService(storage)

	// Must not panic or create the directory
	svc.sweep()

	_, err := os.Stat(storage.TempDir())
	assert.True(t, os.IsNotExist(err))
}
