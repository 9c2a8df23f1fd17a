package submissions

import "fmt"

// ValidationError is a missing or malformed required field. Nothing is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CorruptStorageError means the persisted slot held something that is not a record list.
type CorruptStorageError struct {
	Key string
	Err error
}

func (e *CorruptStorageError) Error() string {
	return fmt.Sprintf("stored submissions under %q are not readable: %v", e.Key, e.Err)
}

func (e *CorruptStorageError) Unwrap() error {
	return e.Err
}
