package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// DiskStore keeps uploaded photos in a flat directory. Filenames are assigned
// from the upload timestamp plus the original extension, with an atomic
// counter breaking ties for uploads landing in the same millisecond.
type DiskStore struct {
	dir string
	seq atomic.Uint64
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), s.seq.Add(1), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

func (s *DiskStore) Remove(filename string) error {
	// Filenames come back out of the photo table; refuse anything that
	// escapes the upload directory.
	if strings.Contains(filename, "/") || strings.Contains(filename, `\`) || filename == "" {
		return fmt.Errorf("invalid photo filename %q", filename)
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Dir returns the root the store writes into, for static file serving.
func (s *DiskStore) Dir() string { return s.dir }
