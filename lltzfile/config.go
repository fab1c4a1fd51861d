// Package lltzfile is the convenience packaging layer around the index
// package: locating a bundled timezones.lltz file on disk, and unwrapping
// the optional distribution wrapper around a compressed one.
//
// Nothing here is on the hot lookup path; index.Reader.Lookup never
// depends on this package. It exists purely so callers who just want "give
// me a Reader" don't have to hand-roll file search or decompression.
package lltzfile

import (
	"log"
	"os"
	"runtime"

	"github.com/geoidx/lltz/internal/options"
)

// DefaultFileName is the bundled index file OpenDefault looks for.
const DefaultFileName = "timezones.lltz"

// DefaultEnvVar, when set, names an environment variable holding an
// explicit path to an LLTZ file, checked before any search path.
const DefaultEnvVar = "LLTZ_DATA_PATH"

// Config holds OpenDefault's search configuration. It is assembled from
// Option values and never exposed directly to callers.
type Config struct {
	searchPaths []string
	envVar      string
	logger      *log.Logger
}

func newConfig() *Config {
	return &Config{
		searchPaths: defaultSearchPaths(),
		envVar:      DefaultEnvVar,
		logger:      log.New(os.Stderr, "", log.LstdFlags),
	}
}

// defaultSearchPaths mirrors the distribution-directory, package-directory,
// working-directory order: the directory of the running executable, the
// directory of this source file (useful in `go run`/development), and the
// current working directory.
func defaultSearchPaths() []string {
	var paths []string

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, dirOf(exe))
	}

	if _, file, _, ok := runtime.Caller(0); ok {
		paths = append(paths, dirOf(file))
	}

	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, wd)
	}

	return paths
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[:i]
		}
	}

	return "."
}

// Option configures OpenDefault. Use WithSearchPaths, WithEnvVar, and
// WithLogger.
type Option = options.Option[*Config]

// WithSearchPaths replaces the default search-path list with paths, tried
// in order after the environment-variable lookup.
func WithSearchPaths(paths ...string) Option {
	return options.NoError(func(c *Config) {
		c.searchPaths = paths
	})
}

// WithEnvVar overrides the environment variable OpenDefault checks for an
// explicit file path before falling back to search paths. Passing "" disables
// the environment-variable lookup entirely.
func WithEnvVar(name string) Option {
	return options.NoError(func(c *Config) {
		c.envVar = name
	})
}

// WithLogger sets the logger OpenDefault uses to report which path it
// opened; failures are returned as errors, not logged. Never used by the core index package, which
// performs no logging per its allocation-light contract.
func WithLogger(l *log.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = l
	})
}
