package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nobunaga0709/sticker-habit/internal/models"
)

type jsonDocument struct {
	Version int             `json:"version"`
	State   models.AppState `json:"state"`
}

// JSONStore persists the snapshot as a single versioned JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.DefaultState())
}

func (s *JSONStore) Load() (models.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.AppState{}, fmt.Errorf("storage not initialized, run 'stickerhabit init' first")
		}
		return models.AppState{}, fmt.Errorf("failed to read storage: %w", err)
	}

	doc := jsonDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.AppState{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	state := doc.State
	if state.OwnedStickers == nil {
		state.OwnedStickers = []models.OwnedSticker{}
	}
	if state.Habits == nil {
		state.Habits = []models.Habit{}
	}
	if state.Records == nil {
		state.Records = []models.CompletionRecord{}
	}

	return state, nil
}

func (s *JSONStore) Save(state models.AppState) error {
	return s.write(state)
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) write(state models.AppState) error {
	doc := jsonDocument{
		Version: 1,
		State:   state,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
