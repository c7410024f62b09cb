package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// record is the on-disk shape of a task. Every key may be absent or null.
type record struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Desc     *string `json:"desc"`
	Date     *string `json:"date"`
	Done     *bool   `json:"done"`
}

// Decode parses a collection document. Absent or null keys take their
// defaults; an absent or null category becomes defaultCategory.
func Decode(data []byte, defaultCategory string) ([]Task, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse todo file: %w", err)
	}

	tasks := make([]Task, 0, len(records))
	for _, r := range records {
		t := Task{
			Title:    Deref(r.Title, ""),
			Category: Deref(r.Category, defaultCategory),
			Desc:     r.Desc,
			Date:     r.Date,
		}
		if r.Done != nil {
			t.Done = *r.Done
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Encode renders a collection with 2-space indentation, literal non-ASCII
// and HTML characters, and a trailing newline. A nil collection encodes as [].
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal todo file: %w", err)
	}
	return buf.Bytes(), nil
}
