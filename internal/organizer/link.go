package organizer

import (
	"errors"
	"fmt"
	"os"
)

// linkRename emulates a no-replace rename with a hard link, which fails when
// dst exists, followed by removing src.
func linkRename(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
		}
		return err
	}
	return os.Remove(src)
}
