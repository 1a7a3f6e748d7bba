package workflow

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Advik-B/wailsctl/internal/logfields"
)

// CleanSummary reports what a clean pass did, entries in plan order.
type CleanSummary struct {
	Removed []string
	Skipped []string
}

// Clean removes the configured build artifacts from the base directory.
// Missing entries are skipped, not errors, so running clean twice is
// harmless. Every entry is attempted even when an earlier removal fails;
// the failures come back aggregated.
func (e *Engine) Clean() (CleanSummary, error) {
	var sum CleanSummary
	var errs []error

	for _, rel := range e.cfg.Clean.Paths {
		path := filepath.Join(e.base, rel)

		info, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Skipping missing path", logfields.Path(path))
			sum.Skipped = append(sum.Skipped, rel)
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("stat %s: %w", rel, err))
			continue
		}

		if info.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", rel, err))
			continue
		}

		slog.Info("Removed", logfields.Path(path))
		sum.Removed = append(sum.Removed, rel)
	}

	return sum, errors.Join(errs...)
}
