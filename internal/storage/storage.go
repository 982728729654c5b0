package storage

import (
	"ezc/internal/domain"
)

// Storage persists and loads run reports (e.g. for CI or the report viewer).
type Storage interface {
	Save(report *domain.RunReport) error
	Load() (*domain.RunReport, error)
	Path() string
}

// JSONStorage stores a report in a single JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes the JSON file at path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the file the storage reads and writes.
func (s *JSONStorage) Path() string {
	return s.path
}
