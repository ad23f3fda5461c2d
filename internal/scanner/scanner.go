// Package scanner lists the top-level regular files of a directory.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrDirectoryUnreadable marks failures to list the scan root.
var ErrDirectoryUnreadable = errors.New("directory unreadable")

// FileEntry is a snapshot of one regular file found in the scan root.
type FileEntry struct {
	Name    string
	Ext     string // text after the last '.', case preserved
	Path    string
	Size    int64
	ModTime time.Time
}

// Stem returns the name without its extension.
func (e FileEntry) Stem() string {
	if e.Ext == "" {
		return strings.TrimSuffix(e.Name, ".")
	}
	return strings.TrimSuffix(e.Name, "."+e.Ext)
}

// Scan lists the immediate regular files of root sorted by name. Directories,
// symlinks and special files are skipped. A root that cannot be listed
// returns an error wrapping ErrDirectoryUnreadable; an empty root returns no
// entries and no error.
func Scan(root string) ([]FileEntry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, root, err)
	}

	var entries []FileEntry
	for _, d := range dirents {
		// Type comes from lstat, so symlinks never report as regular.
		if !d.Type().IsRegular() {
			continue
		}
		info, err := d.Info()
		if err != nil {
			// Removed between listing and stat.
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		name := d.Name()
		entries = append(entries, FileEntry{
			Name:    name,
			Ext:     Extension(name),
			Path:    filepath.Join(root, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Extension returns the text after the last '.' in name, or "" when there is
// none. A leading dot counts, so ".bashrc" has extension "bashrc".
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}
