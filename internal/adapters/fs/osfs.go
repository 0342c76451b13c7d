package fs

import (
	"os"
	"time"

	"go.trai.ch/rebuild/internal/core/ports"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem on the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ModTime returns the modification time of path.
func (o *OSFS) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Exists reports whether path exists.
func (o *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RemoveAll removes path and any children it contains.
func (o *OSFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
