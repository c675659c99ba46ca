// Package rio implements robust I/O over byte-stream descriptors.
//
// The package provides guaranteed-complete transfer primitives (ReadFull,
// WriteFull) that transparently retry signal-interrupted system calls and
// loop over short counts, plus a buffered Reader that multiplexes byte-count
// and line-delimited consumption over one internal read-ahead buffer.
//
// # Layering
//
// Two layers, unbuffered below, buffered above:
//
//   - ReadFull/WriteFull loop directly over a Descriptor until the requested
//     transfer completes, end-of-stream is reached, or a genuine error occurs.
//   - Reader owns a fixed-capacity internal buffer per descriptor and services
//     both "read exactly n bytes" (ReadN) and "read one line" (ReadLine)
//     requests, draining the buffer first and refilling it with a single
//     underlying read when exhausted.
//
// A short count at end-of-stream is never an error; callers distinguish EOF
// by a returned count lower than requested with a nil error.
//
// # Concurrency
//
// The transfer primitives are stateless and safe for concurrent use over
// distinct descriptors. A Reader is NOT safe for concurrent use: its cursor
// and unread count are mutated without synchronization. Use one Reader per
// goroutine, or serialize access externally.
package rio

import "golang.org/x/sys/unix"

// DefaultBufferSize is the capacity of a Reader's internal buffer unless
// overridden with NewReaderSize.
const DefaultBufferSize = 8192

// Descriptor is an open byte-stream handle (file, pipe, socket).
//
// Read fills p with up to len(p) bytes and returns the count; a zero count
// with a nil error signals end-of-stream. Write consumes up to len(p) bytes
// from p and returns the count accepted. Both may return unix.EINTR when the
// underlying blocking call is interrupted by a signal; the transfer
// primitives in this package retry that case transparently.
//
// The descriptor is owned by the caller: this package never closes it, and
// using a Reader after its descriptor is closed is undefined.
type Descriptor interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// FD is a raw Unix file descriptor implementing Descriptor via direct
// read(2)/write(2) system calls. It assumes a blocking descriptor;
// non-blocking descriptors are out of scope for this package.
//
// Unlike os.File, FD does not retry EINTR itself: interruption is surfaced
// so that retry happens at the transfer-primitive layer, closest to the
// consumer of the count.
type FD int

// Stdin, Stdout and Stderr are the standard process descriptors.
const (
	Stdin  FD = 0
	Stdout FD = 1
	Stderr FD = 2
)

// Read reads up to len(p) bytes from the descriptor.
func (fd FD) Read(p []byte) (int, error) {
	if len(p) == 0 {
		// Short-circuit 0-len reads so EOF detection stays unambiguous.
		return 0, nil
	}
	n, err := unix.Read(int(fd), p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Write writes up to len(p) bytes to the descriptor.
func (fd FD) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := unix.Write(int(fd), p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// interrupted reports whether err is a signal interruption of a blocking
// call. Matching is by identity rather than errors.Is: unix errnos are
// comparable values and descriptors surface them unwrapped.
func interrupted(err error) bool {
	return err == unix.EINTR
}

// ReadFull reads from d into p until p is full, end-of-stream is reached, or
// a genuine error occurs. It returns the number of bytes placed in p.
//
// Signal interruptions are retried with no bytes lost. A count lower than
// len(p) with a nil error means the stream ended early; zero means the
// stream was already at end-of-stream. On error, bytes read by earlier
// iterations remain valid in p and are reflected in the returned count.
func ReadFull(d Descriptor, p []byte) (int, error) {
	if d == nil {
		return 0, ErrNilDescriptor
	}

	total := 0
	for total < len(p) {
		n, err := d.Read(p[total:])
		if err != nil {
			if interrupted(err) {
				continue
			}
			return total, err
		}
		if n == 0 {
			// End-of-stream: short count, not an error.
			break
		}
		total += n
	}
	return total, nil
}

// WriteFull writes all of p to d. It returns len(p) on success.
//
// Signal interruptions are retried. A write that reports no progress without
// an error is also retried, since a blocking descriptor accepting zero bytes
// carries no termination signal the way a zero-length read does. On error,
// the returned count is the number of bytes the descriptor accepted before
// the failure.
func WriteFull(d Descriptor, p []byte) (int, error) {
	if d == nil {
		return 0, ErrNilDescriptor
	}

	total := 0
	for total < len(p) {
		n, err := d.Write(p[total:])
		if err != nil {
			if interrupted(err) {
				continue
			}
			return total, err
		}
		if n <= 0 {
			continue
		}
		total += n
	}
	return total, nil
}
