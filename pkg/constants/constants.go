// Package constants provides shared constants used throughout the dessertshop
// codebase: file permissions, default paths, and the price bands used by the
// inventory histogram.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultDataFile is the snapshot file used when none is configured
	DefaultDataFile = "desserts.yaml"

	// ConfigFileName is the config file base name searched in $HOME and the working directory
	ConfigFileName = ".dessertshop"

	// EnvPrefix is the prefix for environment variables read by viper
	EnvPrefix = "DESSERTSHOP"
)

// Price bands for the histogram. Upper bounds are inclusive.
const (
	// LowPriceCeiling closes the first bucket, [0, LowPriceCeiling]
	LowPriceCeiling = 10.0

	// MidPriceCeiling closes the second bucket, (LowPriceCeiling, MidPriceCeiling]
	MidPriceCeiling = 20.0
)

// Snapshot format version written into the YAML/JSON envelope
const SnapshotVersion = 1
