// Package todo reads, validates, and updates the task collection file.
//
// The collection file (todos.json) is a single JSON array:
//
//	[
//	  {
//	    "title": "Beli susu",
//	    "category": "Umum",
//	    "desc": null,
//	    "date": "2024-01-01",
//	    "done": false
//	  }
//	]
//
// # Reading
//
// A missing, unreadable, unparsable, or schema-invalid file reads as an
// empty collection. Keys that are absent or null on disk take their default:
// category becomes the default category, desc and date stay nil, done is
// false.
//
// # Writing
//
// Every mutation rewrites the whole file with:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key order (title, category, desc, date, done)
//   - Non-ASCII and HTML characters written literally
//
// Write failures are returned to the caller and are not retried.
//
// # Addressing
//
// Tasks have no identity of their own. Callers address them by 1-based
// position in the current collection, and a position is only valid until
// the next add or delete.
package todo
