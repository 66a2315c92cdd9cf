package repository

import "fmt"

// StorageError wraps any failure reaching the backing store. It is
// surfaced to callers unmodified; repositories never retry and never
// swallow it. The wrapped driver error stays reachable via errors.Is/As.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
