package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"lukechampine.com/blake3"
)

// swapped in tests to simulate EXDEV
var renameFunc = os.Rename

// CrossDeviceError reports a rename that failed because source and target
// live on different filesystems.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device rename %q -> %q: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

func rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

type Mover struct {
	Logger *zap.Logger
	DryRun bool
}

// EnsureDir creates dir and any missing parents. Existing directories are left alone.
func (m *Mover) EnsureDir(dir string) error {
	if m.DryRun {
		return nil
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		m.Logger.Debug("Creating directory", zap.String("dest", dir))
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("unable to create directory %v: %w", dir, err)
		}
	}

	return nil
}

// Move moves sourceDir/name into destDir, keeping its name. A file already
// present at the target is replaced.
func (m *Mover) Move(sourceDir, name, destDir string) error {
	source := filepath.Join(sourceDir, name)
	target := filepath.Join(destDir, name)

	if m.DryRun {
		m.Logger.Info("Would have moved file", zap.String("source", source), zap.String("dest", target))
		return nil
	}

	err := rename(source, target)
	if err == nil {
		m.Logger.Debug("Moved file", zap.String("source", source), zap.String("dest", target))
		return nil
	}
	if !IsCrossDevice(err) {
		return err
	}

	m.Logger.Info("Atomically copying file across devices", zap.String("source", source), zap.String("dest", target))
	return copyAndRemove(source, target)
}

func copyAndRemove(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	h := blake3.New(32, nil)
	if err := atomic.WriteFile(target, bufio.NewReader(io.TeeReader(in, h))); err != nil {
		return fmt.Errorf("cannot atomically copy %v to %v: %w", source, target, err)
	}

	copied, err := digest(target)
	if err != nil {
		return err
	}
	if !bytes.Equal(h.Sum(nil), copied) {
		_ = os.Remove(target)
		return fmt.Errorf("copy of %v to %v is corrupted", source, target)
	}

	if err := in.Close(); err != nil {
		return err
	}

	return os.Remove(source)
}

func digest(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
