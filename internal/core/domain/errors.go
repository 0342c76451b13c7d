package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find configuration file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingCompiler is returned when the configuration does not name a compiler.
	ErrMissingCompiler = zerr.New("no compiler specified")

	// ErrMissingEntry is returned when the configuration does not name an entry source.
	ErrMissingEntry = zerr.New("no entry source specified")

	// ErrEntryNotFound is returned when the entry source pattern matches no file.
	ErrEntryNotFound = zerr.New("entry source not found")

	// ErrInvalidJobs is returned when a non-positive number of parallel jobs is configured.
	ErrInvalidJobs = zerr.New("jobs must be at least 1")

	// ErrPathMapping is returned when a path is not rooted under the directory its mapping expects.
	ErrPathMapping = zerr.New("path is not under the expected directory")

	// ErrDiscoveryFailed is returned when the dependency probe of a translation unit fails.
	ErrDiscoveryFailed = zerr.New("dependency discovery failed")

	// ErrCompileFailed is returned when a translation unit fails to compile.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrLinkFailed is returned when the link step fails.
	ErrLinkFailed = zerr.New("linking failed")

	// ErrBuildFailed marks a build that was reported to the user already.
	ErrBuildFailed = zerr.New("build failed")

	// ErrResourceSyncFailed is returned when copying a resource fails.
	ErrResourceSyncFailed = zerr.New("failed to synchronize resources")

	// ErrCompileDatabaseFailed is returned when the compilation database cannot be written.
	ErrCompileDatabaseFailed = zerr.New("failed to write compilation database")

	// ErrCleanFailed is returned when build artifacts cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build artifacts")
)
