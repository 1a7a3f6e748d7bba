package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Advik-B/wailsctl/internal/logfields"
)

// LoadDotEnv loads .env and .env.local from the project base directory.
// Variables already set in the environment are never overridden, so shell
// exports keep the last word. Missing files are fine.
func LoadDotEnv(baseDir string) error {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(baseDir, name)
		err := godotenv.Load(path)
		switch {
		case err == nil:
			slog.Debug("Loaded environment file", logfields.Path(path))
		case errors.Is(err, fs.ErrNotExist):
			// Nothing to load.
		default:
			return err
		}
	}
	return nil
}
