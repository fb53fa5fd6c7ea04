package storage

import (
	"encoding/json"
	"exitmenu/logging"
	"exitmenu/models"
	"fmt"
	"os"
	"path/filepath"
)

const settingsFile = "settings.json"

// Manager handles settings persistence
type Manager struct {
	dataPath string
}

// NewManager creates a storage manager in the user's config directory
func NewManager() *Manager {
	configDir, err := os.UserConfigDir()
	if err == nil {
		configDir = filepath.Join(configDir, "exitmenu")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".exitmenu")
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a storage manager rooted at dataPath
func NewManagerAt(dataPath string) *Manager {
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		// Fallback to current directory
		logging.Debugf("cannot create %s: %v", dataPath, err)
		dataPath = "."
	}

	return &Manager{
		dataPath: dataPath,
	}
}

// Path returns the settings file location
func (m *Manager) Path() string {
	return filepath.Join(m.dataPath, settingsFile)
}

// SaveSettings saves the settings to disk
func (m *Manager) SaveSettings(settings *models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	filePath := m.Path()
	logging.Debugf("saving settings to %s", filePath)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LoadSettings loads the settings from disk. Keys missing from the file keep their defaults.
func (m *Manager) LoadSettings() (*models.Settings, error) {
	filePath := m.Path()
	logging.Debugf("loading settings from %s", filePath)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return settings, nil
}
