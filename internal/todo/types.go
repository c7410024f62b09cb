package todo

import (
	"errors"
	"fmt"
)

// DefaultCategory is the category assigned when none is given.
const DefaultCategory = "Umum"

// Task represents a single entry in the collection.
// Field order matches the on-disk key order.
type Task struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Desc     *string `json:"desc"`
	Date     *string `json:"date"`
	Done     bool    `json:"done"`
}

// NewTask holds the input for Repository.Add.
// A nil Category takes the store's default category.
type NewTask struct {
	Title    string
	Category *string
	Desc     *string
	Date     *string
}

// Patch describes a partial update for Repository.Edit.
// A nil field leaves the stored value unchanged; a non-nil field overwrites
// it, including with the empty string. Done is not part of a patch.
type Patch struct {
	Title    *string
	Category *string
	Desc     *string
	Date     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Category == nil && p.Desc == nil && p.Date == nil
}

// apply overwrites the fields of t that are set in p.
func (p Patch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Desc != nil {
		t.Desc = String(*p.Desc)
	}
	if p.Date != nil {
		t.Date = String(*p.Date)
	}
}

// String returns a pointer to a copy of s.
func String(s string) *string {
	return &s
}

// Deref returns the value of s, or fallback when s is nil.
func Deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a 1-based index outside [1, Len].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid index %d (have %d tasks)", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// checkIndex validates a 1-based index against a collection length.
func checkIndex(index, n int) error {
	if index < 1 || index > n {
		return &IndexError{Index: index, Len: n}
	}
	return nil
}
