package clang

import (
	"errors"
	"fmt"
)

var (
	// ErrOpenFailed is returned when a libclang file exists but the native
	// loader rejected it.
	ErrOpenFailed = errors.New("could not open libclang")
	// ErrNotLoaded is returned by Registry.Unload when nothing is loaded.
	ErrNotLoaded = errors.New("a `libclang` shared library is not loaded")
	// ErrClosed is returned when a Library is released more often than retained.
	ErrClosed = errors.New("libclang library already closed")
)

// MissingFunctionError is the panic value of a wrapper whose symbol is not
// exported by the loaded libclang.
type MissingFunctionError struct {
	Name     string
	Detected Version
	Since    Version
}

func (e *MissingFunctionError) Error() string {
	detected := "unsupported version"
	if e.Detected != VersionUnsupported {
		detected = e.Detected.String()
	}
	msg := fmt.Sprintf(
		"a `libclang` function was called that is not supported by the loaded `libclang` instance: called function = `%s`, loaded `libclang` instance = %s",
		e.Name, detected,
	)
	if e.Since != VersionUnsupported {
		msg += fmt.Sprintf(", minimum `libclang` requirement = %s", e.Since)
	}
	return msg
}
