package server

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// OpenRoot returns a read-only view of dir. Every path handed to the
// returned filesystem is resolved inside dir; names that would climb above
// it are reported as not existing.
func OpenRoot(dir string) (afero.Fs, error) {
	absRoot, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid root directory: %w", err)
	}

	osFs := afero.NewOsFs()
	info, err := osFs.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", absRoot)
	}

	return afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, absRoot)), nil
}
