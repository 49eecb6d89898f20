// Package storage holds documents for the lifetime of the process.
// Nothing is written to disk; a restart starts from an empty store.
package storage

// Storage maps document codes to rendered PDF bytes.
// None of the operations fail: a missing code is reported through the boolean result.
type Storage interface {
	// Save inserts or overwrites the content stored under code.
	Save(code string, content []byte)
	// Insert stores content under code only if the code is unused and reports whether it did.
	Insert(code string, content []byte) bool
	// Get returns the content stored under code.
	Get(code string) ([]byte, bool)
	// GetEncoded returns the stored content as standard base64.
	GetEncoded(code string) (string, bool)
	// Clear removes every document. Intended for resetting state between tests.
	Clear()
	// Len returns the number of stored documents.
	Len() int
}
