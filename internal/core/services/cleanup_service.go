package services

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// tempFileMaxAge is how long a staged upload may sit in the temp directory
// before it is considered abandoned. Rejected uploads leave their temp file
// behind; the sweep reclaims them.
const tempFileMaxAge = 24 * time.Hour

// CleanupService sweeps abandoned temp-upload files on a daily schedule
type CleanupService struct {
	storage *StorageService
	cron    *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(storage *StorageService) *CleanupService {
	return &CleanupService{
		storage: storage,
		cron:    cron.New(),
	}
}

// Start schedules the daily sweep (03:00) and runs one immediately
func (s *CleanupService) Start() {
	if _, err := s.cron.AddFunc("0 3 * * *", s.sweep); err != nil {
		log.Printf("❌ CleanupService could not schedule sweep: %v", err)
		return
	}
	s.cron.Start()
	go s.sweep()
	log.Println("🚀 CleanupService started")
}

// Stop stops the scheduler
func (s *CleanupService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CleanupService stopped")
}

func (s *CleanupService) sweep() {
	tempDir := s.storage.TempDir()

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("❌ Temp sweep read error: %v", err)
		}
		return
	}

	cutoff := time.Now().Add(-tempFileMaxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(tempDir, entry.Name())); err != nil {
			log.Printf("⚠️ Temp sweep could not remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("🧹 Temp sweep removed %d abandoned upload(s)", removed)
	}
}
