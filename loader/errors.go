package loader

import "fmt"

// InputError wraps an I/O failure reading a source file (spec §7).
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("loader: reading %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
