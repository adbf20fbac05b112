//go:build unix

package intake

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// checkWritable asks the kernel whether entries can be created in dir.
func checkWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	return nil
}
