package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetDefaultConfig(t *testing.T) {
	config := getDefaultConfig()

	if config.Path.DefaultDialect != "native" {
		t.Errorf("Expected default dialect 'native', got '%s'", config.Path.DefaultDialect)
	}
	if config.Listing.ShowHidden {
		t.Error("Expected ShowHidden to be false by default")
	}
	if config.Listing.Filter.MaxEntries != 30 {
		t.Errorf("Expected filter max entries 30, got %d", config.Listing.Filter.MaxEntries)
	}
	if config.Watcher.IntervalSeconds != 2 {
		t.Errorf("Expected watcher interval 2, got %d", config.Watcher.IntervalSeconds)
	}
	if config.Watcher.BufferSize != 10 {
		t.Errorf("Expected watcher buffer 10, got %d", config.Watcher.BufferSize)
	}
	if config.SMB.PersistCredentials {
		t.Error("Expected PersistCredentials to be false by default")
	}
}

func TestMergeConfigs(t *testing.T) {
	defaults := getDefaultConfig()
	fileConfig := &Config{
		Path:    PathConfig{DefaultDialect: "windows"},
		Listing: ListingConfig{ShowHidden: true},
		Watcher: WatcherConfig{IntervalSeconds: 7},
	}

	mergeConfigs(defaults, fileConfig)

	if defaults.Path.DefaultDialect != "windows" {
		t.Errorf("Expected merged dialect 'windows', got '%s'", defaults.Path.DefaultDialect)
	}
	if !defaults.Listing.ShowHidden {
		t.Error("Expected merged ShowHidden true")
	}
	if defaults.Watcher.IntervalSeconds != 7 {
		t.Errorf("Expected merged interval 7, got %d", defaults.Watcher.IntervalSeconds)
	}
	// Unset numeric fields keep their defaults
	if defaults.Watcher.BufferSize != 10 {
		t.Errorf("Expected default buffer 10, got %d", defaults.Watcher.BufferSize)
	}
	if defaults.Listing.Filter.MaxEntries != 30 {
		t.Errorf("Expected default filter max 30, got %d", defaults.Listing.Filter.MaxEntries)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := &Manager{configPath: filepath.Join(t.TempDir(), "config.json")}
	config, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Path.DefaultDialect != "native" {
		t.Errorf("Expected defaults for missing file, got '%s'", config.Path.DefaultDialect)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	m := &Manager{configPath: path}
	if _, err := m.Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m := &Manager{configPath: filepath.Join(t.TempDir(), "sub", "config.json")}

	config := getDefaultConfig()
	config.Path.DefaultDialect = "posix"
	config.Listing.ShowHidden = true
	config.RecordFilter("*.go")

	if err := m.Save(config); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Path.DefaultDialect != "posix" {
		t.Errorf("Expected dialect 'posix', got '%s'", loaded.Path.DefaultDialect)
	}
	if !loaded.Listing.ShowHidden {
		t.Error("Expected ShowHidden true after round trip")
	}
	if len(loaded.Listing.Filter.Entries) != 1 || loaded.Listing.Filter.Entries[0].Pattern != "*.go" {
		t.Errorf("Filter entries got %#v", loaded.Listing.Filter.Entries)
	}

	// The stored form is plain JSON
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("stored config is not valid JSON: %v", err)
	}
}

func TestRecordFilter(t *testing.T) {
	config := getDefaultConfig()
	config.Listing.Filter.MaxEntries = 2

	config.RecordFilter("*.go")
	config.RecordFilter("*.md")
	if len(config.Listing.Filter.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(config.Listing.Filter.Entries))
	}
	if config.Listing.Filter.Entries[0].Pattern != "*.md" {
		t.Errorf("Expected most recent pattern first, got '%s'", config.Listing.Filter.Entries[0].Pattern)
	}

	// Re-use bumps the counter instead of duplicating
	config.RecordFilter("*.go")
	if len(config.Listing.Filter.Entries) != 2 {
		t.Fatalf("Expected 2 entries after re-use, got %d", len(config.Listing.Filter.Entries))
	}
	if config.Listing.Filter.Entries[0].Pattern != "*.go" {
		t.Errorf("Expected '*.go' promoted to front, got '%s'", config.Listing.Filter.Entries[0].Pattern)
	}
	if config.Listing.Filter.Entries[0].UseCount != 2 {
		t.Errorf("Expected use count 2, got %d", config.Listing.Filter.Entries[0].UseCount)
	}

	// The oldest entry is evicted past MaxEntries
	config.RecordFilter("*.txt")
	if len(config.Listing.Filter.Entries) != 2 {
		t.Fatalf("Expected eviction at max entries, got %d", len(config.Listing.Filter.Entries))
	}
	for _, e := range config.Listing.Filter.Entries {
		if e.Pattern == "*.md" {
			t.Error("Expected '*.md' to be evicted")
		}
	}
}

func TestRecordFilterOrdering(t *testing.T) {
	config := getDefaultConfig()
	config.RecordFilter("a")
	time.Sleep(2 * time.Millisecond)
	config.RecordFilter("b")
	if config.Listing.Filter.Entries[0].Pattern != "b" {
		t.Errorf("Expected 'b' first, got '%s'", config.Listing.Filter.Entries[0].Pattern)
	}
}
