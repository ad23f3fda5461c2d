package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckLockDir passes when the lock directory is usable or can be created
// under its nearest existing ancestor.
func CheckLockDir(path string) Result {
	const name = "Lock directory"

	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path)
	} else if !os.IsNotExist(err) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	parent := filepath.Dir(path)
	for {
		if _, err := os.Stat(parent); err == nil {
			break
		}
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}
	if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, parent, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first run)", path)}
}

// CheckCategoryFolders fails when an entry named like a category folder
// exists in root but does not resolve to a directory. Moves into that
// category would fail.
func CheckCategoryFolders(root string, folders []string) Result {
	const name = "Category folders"

	var blocked []string
	for _, folder := range folders {
		path := filepath.Join(root, folder)
		if _, err := os.Lstat(path); err != nil {
			continue
		}
		// Moves follow a symlink to a directory; a dangling one blocks them.
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			blocked = append(blocked, folder)
		}
	}
	if len(blocked) > 0 {
		return Result{Name: name, Detail: fmt.Sprintf("blocked by non-directory entries: %s", strings.Join(blocked, ", "))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d folders available", len(folders))}
}
