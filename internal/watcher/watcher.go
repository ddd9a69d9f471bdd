package watcher

import (
	"sync"
	"time"

	"fpath/internal/constants"
	"fpath/internal/fspath"
)

// Status marks what happened to a child between two polls.
type Status int

const (
	StatusAdded Status = iota
	StatusDeleted
	StatusModified
)

// Child is one directory entry in a watcher snapshot.
type Child struct {
	Name     string
	Path     fspath.Path
	IsDir    bool
	Size     int64
	Modified time.Time
	Status   Status
}

// PendingChanges represents child changes detected by one poll.
type PendingChanges struct {
	Added    []Child
	Deleted  []Child
	Modified []Child
}

// DirectoryWatcher polls a directory through a storage provider and
// reports child additions, deletions, and modifications on a buffered
// channel. The provider is queried fresh each poll; no filesystem state is
// cached beyond the previous snapshot.
type DirectoryWatcher struct {
	vfs      fspath.VFS
	dir      fspath.Path
	interval time.Duration

	mu       sync.RWMutex     // Protects previous, stopped, and the events close
	previous map[string]Child // Previous snapshot keyed by child name

	ticker   *time.Ticker
	stopChan chan struct{}
	events   chan *PendingChanges
	stopped  bool
}

// NewDirectoryWatcher creates a watcher for dir on the given provider.
// A non-positive interval or buffer falls back to the defaults.
func NewDirectoryWatcher(vfs fspath.VFS, dir fspath.Path, interval time.Duration, buffer int) *DirectoryWatcher {
	if interval <= 0 {
		interval = constants.WatcherInterval
	}
	if buffer <= 0 {
		buffer = constants.WatcherBufferSize
	}
	return &DirectoryWatcher{
		vfs:      vfs,
		dir:      dir,
		interval: interval,
		previous: make(map[string]Child),
		stopChan: make(chan struct{}),
		events:   make(chan *PendingChanges, buffer),
	}
}

// Events returns the channel change sets are delivered on. It is closed by
// Stop.
func (dw *DirectoryWatcher) Events() <-chan *PendingChanges {
	return dw.events
}

// Start takes an initial snapshot and begins polling.
func (dw *DirectoryWatcher) Start() {
	dw.mu.Lock()
	if dw.ticker != nil && !dw.stopped {
		dw.mu.Unlock()
		return // Already running
	}
	dw.stopped = false
	if dw.stopChan == nil {
		dw.stopChan = make(chan struct{})
	}
	dw.mu.Unlock()

	dw.setSnapshot(dw.readCurrent())

	dw.ticker = time.NewTicker(dw.interval)
	ticker, stop := dw.ticker, dw.stopChan
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				dw.checkForChanges()
			case <-stop:
				return
			}
		}
	}()
}

// Stop stops the watcher and closes the event channel. Holding the mutex
// across the close keeps it ordered against any in-flight poll's send.
func (dw *DirectoryWatcher) Stop() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.stopped {
		return
	}
	dw.stopped = true
	dw.ticker = nil // Goroutine owns the ticker cleanup

	close(dw.stopChan)
	dw.stopChan = nil
	close(dw.events)
}

// readCurrent builds the current child map, skipping entries that vanish
// between the listing and their stat.
func (dw *DirectoryWatcher) readCurrent() map[string]Child {
	entries, err := dw.vfs.ReadDir(dw.dir.String())
	if err != nil {
		return nil // Skip this poll if the directory cannot be read
	}

	current := make(map[string]Child, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == constants.CurrentDirectoryName || name == constants.ParentDirectoryName {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		current[name] = Child{
			Name:     name,
			Path:     dw.dir.JoinName(name),
			IsDir:    entry.IsDir(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		}
	}
	return current
}

func (dw *DirectoryWatcher) setSnapshot(current map[string]Child) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if current == nil {
		current = make(map[string]Child)
	}
	dw.previous = current
}

// checkForChanges performs one poll, publishing a change set when anything
// differs from the previous snapshot.
func (dw *DirectoryWatcher) checkForChanges() {
	current := dw.readCurrent()
	if current == nil {
		return
	}

	added, deleted, modified := dw.detectChanges(current)
	dw.setSnapshot(current)

	if len(added) == 0 && len(deleted) == 0 && len(modified) == 0 {
		return
	}

	// The stopped check and the send stay under one read lock so Stop
	// cannot close the channel between them.
	dw.mu.RLock()
	defer dw.mu.RUnlock()
	if dw.stopped {
		return
	}
	select {
	case dw.events <- &PendingChanges{Added: added, Deleted: deleted, Modified: modified}:
	default:
		// Channel full, skip this update
	}
}

// detectChanges compares current and previous states to find differences
func (dw *DirectoryWatcher) detectChanges(current map[string]Child) (added, deleted, modified []Child) {
	dw.mu.RLock()
	defer dw.mu.RUnlock()

	for name, child := range current {
		prev, exists := dw.previous[name]
		if !exists {
			child.Status = StatusAdded
			added = append(added, child)
			continue
		}
		if !child.Modified.Equal(prev.Modified) || child.Size != prev.Size {
			child.Status = StatusModified
			modified = append(modified, child)
		}
	}

	for name, child := range dw.previous {
		if _, exists := current[name]; !exists {
			child.Status = StatusDeleted
			deleted = append(deleted, child)
		}
	}

	return added, deleted, modified
}
