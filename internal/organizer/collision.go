package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"foc/internal/scanner"
)

// MaxCollisionSuffix bounds the numbered candidates tried for one file.
const MaxCollisionSuffix = 100000

// ResolveCollision returns the first free path for entry inside folder:
// the original name, then stem_1.ext, stem_2.ext and so on. Any existing
// directory entry, including a dangling symlink, counts as taken.
func ResolveCollision(folder string, entry scanner.FileEntry) (string, error) {
	candidate := filepath.Join(folder, entry.Name)
	free, err := isFree(candidate)
	if err != nil || free {
		return candidate, err
	}

	stem := entry.Stem()
	for n := 1; n <= MaxCollisionSuffix; n++ {
		candidate = filepath.Join(folder, numberedName(stem, entry.Ext, n))
		free, err := isFree(candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrCollisionLimit, entry.Name, folder)
}

func numberedName(stem, ext string, n int) string {
	if ext == "" {
		return fmt.Sprintf("%s_%d", stem, n)
	}
	return fmt.Sprintf("%s_%d.%s", stem, n, ext)
}

func isFree(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
