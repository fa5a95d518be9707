// Package constants provides shared constants used throughout the skycatalog codebase.
// This includes the on-medium naming scheme, fixed field capacities, and file
// permissions used when preparing fixtures.
package constants

// Naming scheme of the catalog on the storage medium
const (
	// PathSeparator joins path segments. Segments never contain it.
	PathSeparator = "/"

	// ConstellationsDir is the directory holding one folder per constellation
	ConstellationsDir = "const"

	// RecordSuffix is the extension of every object record file
	RecordSuffix = ".txt"

	// CountSuffix is the extension of the per-category count files
	CountSuffix = ".cnt"

	// TranslationSuffix is the extension of constellation translation files
	TranslationSuffix = ".tsl"

	// RecordIDDigits is the zero-padded width of identifiers in record file names
	RecordIDDigits = 6
)

// Field capacities in bytes. They mirror the fixed buffers of the embedded
// firmware the catalog format was designed for, without the terminator byte.
const (
	// DesignationCapacity bounds Object.Designation (e.g. "NGC 7000")
	DesignationCapacity = 31

	// NameCapacity bounds Object.Name
	NameCapacity = 31

	// AbbreviationCapacity bounds constellation abbreviations
	AbbreviationCapacity = 4

	// NumberCapacity bounds the text of a numeric field before conversion
	NumberCapacity = 11

	// FullNameCapacity bounds Constellation.FullName
	FullNameCapacity = 31

	// CountCapacity bounds the text of a count file
	CountCapacity = 5
)

// Medium selectors understood by the default mounter
const (
	// MediumOS mounts the whole host filesystem
	MediumOS = "os"

	// MediumMemory mounts an empty in-memory filesystem
	MediumMemory = "mem"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// DefaultListLimit is the default number of entries the CLI walks in a list
	DefaultListLimit = 100
)
