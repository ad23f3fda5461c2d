package organizer

import (
	"errors"
	"os"
	"syscall"
)

// ExecOptions tunes how Execute performs the rename.
type ExecOptions struct {
	// OverwriteOnRace replaces a destination that appears between the
	// collision check and the rename (last writer wins). When false the
	// rename fails with ErrDestinationExists instead.
	OverwriteOnRace bool
}

// Execute creates the action's folder, resolves a collision-free name and
// moves the file there. It returns the final destination. Every failure wraps
// ErrMoveFailed.
func Execute(action MoveAction, opts ExecOptions) (string, error) {
	if err := os.MkdirAll(action.Folder, 0o755); err != nil {
		return "", wrap(ErrMoveFailed, "create folder", action.Folder, err)
	}

	target, err := ResolveCollision(action.Folder, action.Entry)
	if err != nil {
		return "", wrap(ErrMoveFailed, "resolve destination", action.Entry.Name, err)
	}

	if err := moveFile(action.Source, target, opts.OverwriteOnRace); err != nil {
		return "", wrap(ErrMoveFailed, "move", action.Entry.Name, err)
	}
	return target, nil
}

func moveFile(src, dst string, overwrite bool) error {
	var err error
	if overwrite {
		err = os.Rename(src, dst)
	} else {
		err = renameNoReplace(src, dst)
	}
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	if err := copyFile(src, dst, !overwrite); err != nil {
		return err
	}
	return os.Remove(src)
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}
