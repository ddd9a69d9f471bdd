package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"fpath/internal/constants"
	apperrors "fpath/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Path    PathConfig    `json:"path"`
	Listing ListingConfig `json:"listing"`
	Watcher WatcherConfig `json:"watcher"`
	SMB     SMBConfig     `json:"smb"`
}

// PathConfig represents path handling settings
type PathConfig struct {
	// DefaultDialect selects how bare text is parsed: "posix",
	// "windows", or "native".
	DefaultDialect string `json:"defaultDialect"`
}

// ListingConfig represents directory listing settings
type ListingConfig struct {
	ShowHidden bool         `json:"showHidden"`
	Filter     FilterConfig `json:"filter"`
}

// FilterEntry represents a single filter pattern with metadata
type FilterEntry struct {
	Pattern  string    `json:"pattern"`  // Doublestar glob pattern
	LastUsed time.Time `json:"lastUsed"` // Last usage timestamp
	UseCount int       `json:"useCount"` // Usage frequency counter
}

// FilterConfig represents filter pattern history
type FilterConfig struct {
	MaxEntries int           `json:"maxEntries"` // Maximum number of patterns to remember
	Entries    []FilterEntry `json:"entries"`    // Filter history (most recent first)
}

// WatcherConfig represents directory watcher settings
type WatcherConfig struct {
	IntervalSeconds int `json:"intervalSeconds"`
	BufferSize      int `json:"bufferSize"`
}

// SMBConfig represents SMB provider settings
type SMBConfig struct {
	PersistCredentials bool `json:"persistCredentials"` // Save credentials to the OS keyring after a successful mount
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
	}
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, apperrors.NewConfigError("load", "error parsing config file", err)
	}

	mergeConfigs(config, &fileConfig)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return apperrors.NewConfigError("save", "error creating config directory", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return apperrors.NewConfigError("save", "error marshaling config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return apperrors.NewConfigError("save", "error writing config file", err)
	}

	return nil
}

// RecordFilter updates the filter history with a just-used pattern,
// trimming least-recently-used entries past MaxEntries.
func (c *Config) RecordFilter(pattern string) {
	f := &c.Listing.Filter
	now := time.Now()
	for i := range f.Entries {
		if f.Entries[i].Pattern == pattern {
			f.Entries[i].LastUsed = now
			f.Entries[i].UseCount++
			sortFilterEntries(f.Entries)
			return
		}
	}
	f.Entries = append(f.Entries, FilterEntry{Pattern: pattern, LastUsed: now, UseCount: 1})
	sortFilterEntries(f.Entries)
	if f.MaxEntries > 0 && len(f.Entries) > f.MaxEntries {
		f.Entries = f.Entries[:f.MaxEntries]
	}
}

func sortFilterEntries(entries []FilterEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastUsed.After(entries[j].LastUsed)
	})
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Path: PathConfig{
			DefaultDialect: constants.DefaultDialectName,
		},
		Listing: ListingConfig{
			ShowHidden: constants.DefaultShowHidden,
			Filter: FilterConfig{
				MaxEntries: constants.DefaultFilterEntries,
				Entries:    make([]FilterEntry, 0),
			},
		},
		Watcher: WatcherConfig{
			IntervalSeconds: constants.DefaultWatcherSeconds,
			BufferSize:      constants.WatcherBufferSize,
		},
		SMB: SMBConfig{
			PersistCredentials: false,
		},
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\fpath\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, constants.ApplicationName)

	case "darwin":
		// macOS: ~/Library/Application Support/fpath/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return constants.ConfigFileName
		}
		configDir = filepath.Join(home, "Library", "Application Support", constants.ApplicationName)

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/fpath/config.json or ~/.config/fpath/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, constants.ApplicationName)
	}

	return filepath.Join(configDir, constants.ConfigFileName)
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if fileConfig.Path.DefaultDialect != "" {
		defaultConfig.Path.DefaultDialect = fileConfig.Path.DefaultDialect
	}

	// Note: for bool values, we can't distinguish between false and unset,
	// so we always use the file value
	defaultConfig.Listing.ShowHidden = fileConfig.Listing.ShowHidden
	if fileConfig.Listing.Filter.MaxEntries != 0 {
		defaultConfig.Listing.Filter.MaxEntries = fileConfig.Listing.Filter.MaxEntries
	}
	if len(fileConfig.Listing.Filter.Entries) > 0 {
		defaultConfig.Listing.Filter.Entries = fileConfig.Listing.Filter.Entries
	}

	if fileConfig.Watcher.IntervalSeconds != 0 {
		defaultConfig.Watcher.IntervalSeconds = fileConfig.Watcher.IntervalSeconds
	}
	if fileConfig.Watcher.BufferSize != 0 {
		defaultConfig.Watcher.BufferSize = fileConfig.Watcher.BufferSize
	}

	defaultConfig.SMB.PersistCredentials = fileConfig.SMB.PersistCredentials
}
