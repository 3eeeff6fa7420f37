package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidViewport      = errors.New("viewport dimensions must be positive")
	ErrInvalidZoomRange     = errors.New("invalid zoom range")
	ErrInvalidSnapTolerance = errors.New("snap tolerance must be positive")
	ErrInvalidPaste         = errors.New("invalid paste settings")
	ErrInvalidHistoryMax    = errors.New("history max entries must be positive")
	ErrInvalidLogLevel      = errors.New("unknown log level")
)

// ParseError wraps a TOML syntax error with its source path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
