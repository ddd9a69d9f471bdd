package constants

import "time"

// Application constants
const (
	ApplicationName  = "fpath"
	ApplicationTitle = "Path Inspector"
)

// Directory watcher constants
const (
	WatcherInterval   = 2 * time.Second
	WatcherBufferSize = 10
)

// File size constants
const (
	// SizeUnknown is returned by size probes when the target is not a
	// regular file or its size cannot be obtained.
	SizeUnknown int64 = -1

	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// File system constants
const (
	RootPath             = "/"
	CurrentDirectoryName = "."
	ParentDirectoryName  = ".."
)

// Configuration constants
const (
	ConfigFileName        = "config.json"
	DefaultDialectName    = "native"
	DefaultFilterEntries  = 30
	DefaultShowHidden     = false
	DefaultWatcherSeconds = 2
)

// SMB constants
const (
	SMBPort        = "445"
	SMBDialTimeout = 5 * time.Second
)
