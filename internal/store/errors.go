package store

import "fmt"

// StoreError reports a failed file operation on a backing store
type StoreError struct {
	Op   string // load, save, append, read, clear
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
