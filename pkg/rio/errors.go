package rio

import "errors"

// ============================================================================
// Standard Robust I/O Errors
// ============================================================================

// These errors cover the failure conditions this layer defines itself.
// Genuine descriptor errors (EBADF, EIO, ...) are surfaced unchanged from
// the underlying Read/Write call and are not wrapped.

var (
	// ErrNilDescriptor indicates an operation was invoked with a nil
	// Descriptor. Binding a handle to a descriptor happens exactly once,
	// at construction, so this always indicates a caller bug.
	ErrNilDescriptor = errors.New("nil descriptor")
)
