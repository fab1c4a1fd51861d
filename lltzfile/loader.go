package lltzfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/geoidx/lltz/errs"
	"github.com/geoidx/lltz/index"
	"github.com/geoidx/lltz/internal/options"
)

// OpenDefault locates a bundled timezones.lltz file and opens it.
//
// Resolution order: the environment variable named by WithEnvVar (default
// LLTZ_DATA_PATH, if set and non-empty), then each directory in
// WithSearchPaths (default: the running executable's directory, the
// directory of this package's source file, and the current working
// directory), joined with DefaultFileName.
//
// OpenDefault fails with errs.ErrDataFileNotFound if no candidate path
// exists; any error opening a path that does exist (bad magic, truncated
// data) is returned as-is.
func OpenDefault(opts ...Option) (*index.Reader, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.envVar != "" {
		if p := os.Getenv(cfg.envVar); p != "" {
			cfg.logger.Printf("lltzfile: using %s=%s", cfg.envVar, p)

			return openPath(p)
		}
	}

	for _, dir := range cfg.searchPaths {
		p := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(p); err == nil {
			cfg.logger.Printf("lltzfile: opening %s", p)

			return openPath(p)
		}
	}

	return nil, fmt.Errorf("%w: %s not found in any search path", errs.ErrDataFileNotFound, DefaultFileName)
}

func openPath(path string) (*index.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDataFileNotFound, err)
	}

	return index.Open(data)
}
