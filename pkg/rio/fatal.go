package rio

import (
	"os"

	"github.com/devraider/rio/internal/logger"
)

// Fail-fast wrappers over the recoverable core.
//
// Each Must* variant performs the same operation as its counterpart but
// treats any error as fatal: it logs a diagnostic and terminates the
// process. Short counts at end-of-stream are still returned normally, since
// end-of-stream is not an error. These wrappers suit simple callers for
// which partial-failure handling would add complexity disproportionate to
// the use case; everything else should use the error-returning core.

// exit is swapped out by tests.
var exit = os.Exit

func fatal(op string, err error) {
	logger.Error("unrecoverable I/O failure", "op", op, "error", err)
	exit(1)
}

// MustReadFull is ReadFull with fail-fast error handling.
func MustReadFull(d Descriptor, p []byte) int {
	n, err := ReadFull(d, p)
	if err != nil {
		fatal("read_full", err)
	}
	return n
}

// MustWriteFull is WriteFull with fail-fast error handling.
func MustWriteFull(d Descriptor, p []byte) int {
	n, err := WriteFull(d, p)
	if err != nil {
		fatal("write_full", err)
	}
	return n
}

// MustReadN is Reader.ReadN with fail-fast error handling.
func MustReadN(r *Reader, p []byte) int {
	n, err := r.ReadN(p)
	if err != nil {
		fatal("read_n", err)
	}
	return n
}

// MustReadLine is Reader.ReadLine with fail-fast error handling.
func MustReadLine(r *Reader, p []byte) int {
	n, err := r.ReadLine(p)
	if err != nil {
		fatal("read_line", err)
	}
	return n
}
