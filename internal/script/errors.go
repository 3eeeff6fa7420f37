package script

import "errors"

// Errors returned by macro execution.
var (
	// ErrHostClosed indicates the host's Lua state has been released.
	ErrHostClosed = errors.New("script host is closed")

	// ErrScriptTimeout indicates a macro exceeded its execution limit.
	ErrScriptTimeout = errors.New("macro execution timed out")
)
