//go:build unix

package fs

import (
	"errors"
	"syscall"
)

func isEXDEV(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
