package todo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store reads and writes the collection file at a fixed path.
type Store struct {
	path            string
	defaultCategory string
	logger          *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report degraded reads and writes.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultCategory sets the category used for tasks stored without one.
func WithDefaultCategory(category string) StoreOption {
	return func(s *Store) {
		if category != "" {
			s.defaultCategory = category
		}
	}
}

// NewStore creates a store for the collection file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:            path,
		defaultCategory: DefaultCategory,
		logger:          log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the collection file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultCategory returns the category assigned to tasks without one.
func (s *Store) DefaultCategory() string {
	return s.defaultCategory
}

// Load reads the collection. It never fails: a missing, unreadable, or
// invalid file reads as an empty collection.
func (s *Store) Load() []Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("todo file not found, starting empty", "path", s.path)
		} else {
			s.logger.Debug("todo file unreadable, starting empty", "path", s.path, "err", err)
		}
		return []Task{}
	}

	if result := Validate(data, ValidationOptions{}); !result.Valid {
		s.logger.Debug("todo file invalid, starting empty", "path", s.path, "errors", len(result.Errors))
		return []Task{}
	}

	tasks, err := Decode(data, s.defaultCategory)
	if err != nil {
		s.logger.Debug("todo file unparsable, starting empty", "path", s.path, "err", err)
		return []Task{}
	}
	return tasks
}

// Save overwrites the collection file with tasks, creating the parent
// directory when needed.
func (s *Store) Save(tasks []Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create todo dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}

	s.logger.Debug("todo file saved", "path", s.path, "tasks", len(tasks))
	return nil
}
