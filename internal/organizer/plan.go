package organizer

import (
	"path/filepath"

	"foc/internal/category"
	"foc/internal/scanner"
)

// Policy controls where unmatched files go.
type Policy struct {
	// UncategorizedDir, when non-empty, receives files no rule claims.
	// Empty leaves them in place.
	UncategorizedDir string
}

// MoveAction describes one planned relocation.
type MoveAction struct {
	Entry       scanner.FileEntry
	Category    string
	Folder      string
	Source      string
	Destination string
}

// Plan computes the move for entry. Destination is the preferred path inside
// root/<category> before collision resolution. The boolean is false when the
// entry is uncategorized and the policy leaves such files in place.
func Plan(entry scanner.FileEntry, cat, root string, policy Policy) (MoveAction, bool) {
	folderName := cat
	if cat == category.Uncategorized {
		if policy.UncategorizedDir == "" {
			return MoveAction{Entry: entry, Source: entry.Path}, false
		}
		folderName = policy.UncategorizedDir
	}
	folder := filepath.Join(root, folderName)
	return MoveAction{
		Entry:       entry,
		Category:    folderName,
		Folder:      folder,
		Source:      entry.Path,
		Destination: filepath.Join(folder, entry.Name),
	}, true
}
