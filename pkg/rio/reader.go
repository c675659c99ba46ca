package rio

import "bytes"

// Reader is a buffered handle over a single descriptor.
//
// The handle owns a fixed-capacity internal read-ahead buffer and services
// both byte-count (ReadN) and line-delimited (ReadLine) requests from it,
// refilling from the descriptor only when the buffer is exhausted. Both
// request kinds share one cursor, so interleaving them never loses or
// duplicates bytes.
//
// A Reader never performs I/O at construction, never closes its descriptor,
// and is not safe for concurrent use.
type Reader struct {
	d      Descriptor
	buf    []byte
	cursor int // index of the next unread byte in buf
	unread int // valid, not-yet-consumed bytes at buf[cursor:]
}

// NewReader returns a Reader over d with the default buffer capacity.
func NewReader(d Descriptor) *Reader {
	return NewReaderSize(d, DefaultBufferSize)
}

// NewReaderSize returns a Reader over d whose internal buffer holds size
// bytes. A non-positive size falls back to DefaultBufferSize.
func NewReaderSize(d Descriptor, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Reader{
		d:   d,
		buf: make([]byte, size),
	}
}

// Buffered returns the number of bytes currently resident in the internal
// buffer, i.e. bytes that can be consumed without touching the descriptor.
func (r *Reader) Buffered() int {
	return r.unread
}

// fill replenishes the internal buffer with exactly one underlying read into
// the full capacity. Only signal interruptions are retried here; a genuine
// error surfaces unchanged and a zero count means end-of-stream.
//
// Precondition: r.unread == 0.
func (r *Reader) fill() error {
	for {
		n, err := r.d.Read(r.buf)
		if err != nil {
			if interrupted(err) {
				continue
			}
			return err
		}
		r.cursor = 0
		r.unread = n
		return nil
	}
}

// ReadN reads up to len(p) bytes into p, preferring data already resident in
// the internal buffer and refilling from the descriptor when it runs dry.
//
// The returned count equals len(p) unless the stream ends early; zero with a
// nil error means end-of-stream with nothing buffered. A refill failure is
// returned immediately, with the count of bytes already copied into p.
// len(p) == 0 returns 0 without touching the buffer or performing I/O.
func (r *Reader) ReadN(p []byte) (int, error) {
	if r.d == nil {
		return 0, ErrNilDescriptor
	}

	total := 0
	for total < len(p) {
		if r.unread == 0 {
			if err := r.fill(); err != nil {
				return total, err
			}
			if r.unread == 0 {
				// End-of-stream.
				break
			}
		}
		n := copy(p[total:], r.buf[r.cursor:r.cursor+r.unread])
		r.cursor += n
		r.unread -= n
		total += n
	}
	return total, nil
}

// ReadLine reads one line into p: bytes up to and including the next '\n',
// or up to end-of-stream if no terminator appears. At most len(p)-1 data
// bytes are written; a NUL sentinel is always placed directly after the data
// and is not counted in the returned length.
//
// Exactly the returned bytes are consumed from the stream: nothing past the
// terminator (or past the cap) is removed from the internal buffer, so the
// next call resumes where this one stopped. A return of 0 with a nil error
// means end-of-stream; a partial line at end-of-stream is returned
// unterminated with its length. len(p) == 0 returns 0 with no sentinel
// written and nothing consumed.
func (r *Reader) ReadLine(p []byte) (int, error) {
	if r.d == nil {
		return 0, ErrNilDescriptor
	}
	if len(p) == 0 {
		return 0, nil
	}

	total := 0
	for total < len(p)-1 {
		if r.unread == 0 {
			if err := r.fill(); err != nil {
				return 0, err
			}
			if r.unread == 0 {
				// End-of-stream: return what this call gathered so far.
				break
			}
		}

		// Scan the resident window for a terminator and copy in bulk.
		window := r.buf[r.cursor : r.cursor+r.unread]
		want := len(p) - 1 - total
		end := bytes.IndexByte(window, '\n')
		done := end >= 0 && end < want
		if done {
			want = end + 1
		} else if len(window) < want {
			want = len(window)
		}

		n := copy(p[total:], window[:want])
		r.cursor += n
		r.unread -= n
		total += n
		if done {
			break
		}
	}

	p[total] = 0
	return total, nil
}
