package entities

import "errors"

// ErrChecksFailed is the sentinel returned by commands when at least one
// policy violation was found. The CLI maps it to exit code 1 without
// printing a stack of wrapped context.
var ErrChecksFailed = errors.New("one or more checks failed")
