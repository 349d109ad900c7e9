package storage

import "io"

// Store is the file sink product photos are written to and removed from.
type Store interface {
	// Save writes src under a newly assigned filename and returns it.
	Save(src io.Reader, originalName string) (string, error)

	// Remove deletes a previously saved file. A missing file is not an error.
	Remove(filename string) error
}
