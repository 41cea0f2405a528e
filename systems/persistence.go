package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/ropewalk/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// ItemStore is the slice of *gdata.Manager progress needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedProgress is stored per level.
type SavedProgress struct {
	Wins   int `json:"wins"`
	Deaths int `json:"deaths"`
}

var progressStore ItemStore

// InitPersistence opens the gdata store for the app. Without it progress is
// only counted in memory.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	progressStore = m
	return nil
}

// SetProgressStore swaps the backing store; nil disables persistence.
func SetProgressStore(s ItemStore) {
	progressStore = s
}

func progressKey(level string) string {
	return "progress_" + level
}

// LoadProgress reads a level's saved progress. A level with nothing saved
// yet returns zero progress.
func LoadProgress(level string) (SavedProgress, error) {
	var progress SavedProgress
	if progressStore == nil {
		return progress, nil
	}

	data, err := progressStore.LoadItem(progressKey(level))
	if err != nil {
		return progress, fmt.Errorf("load progress for %s: %w", level, err)
	}
	if len(data) == 0 {
		return progress, nil
	}
	if err := json.Unmarshal(data, &progress); err != nil {
		return progress, fmt.Errorf("parse progress for %s: %w", level, err)
	}
	return progress, nil
}

// SaveProgress writes a level's progress.
func SaveProgress(level string, progress SavedProgress) error {
	if progressStore == nil {
		return nil
	}
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := progressStore.SaveItem(progressKey(level), data); err != nil {
		return fmt.Errorf("save progress for %s: %w", level, err)
	}
	return nil
}

// RecordWin adds a win to the level's saved progress.
func RecordWin(level string) {
	updateProgress(level, func(p *SavedProgress) { p.Wins++ })
}

// RecordDeath adds a death to the level's saved progress.
func RecordDeath(level string) {
	updateProgress(level, func(p *SavedProgress) { p.Deaths++ })
}

// updateProgress never fails the game; storage errors are logged.
func updateProgress(level string, change func(p *SavedProgress)) {
	if progressStore == nil {
		return
	}
	progress, err := LoadProgress(level)
	if err != nil {
		logger.Warn("could not load progress", zap.Error(err))
	}
	change(&progress)
	if err := SaveProgress(level, progress); err != nil {
		logger.Warn("could not save progress", zap.Error(err))
	}
}
