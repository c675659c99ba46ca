package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/devraider/rio/pkg/rio"
)

// pipeWith returns the read end of a pipe pre-loaded with data. The write
// end is already closed so readers see end-of-stream after the payload.
func pipeWith(t *testing.T, data string) rio.FD {
	t.Helper()
	fds := make([]int, 2)
	require.NoError(t, unix.Pipe(fds))
	t.Cleanup(func() { unix.Close(fds[0]) })

	_, err := rio.WriteFull(rio.FD(fds[1]), []byte(data))
	require.NoError(t, err)
	require.NoError(t, unix.Close(fds[1]))
	return rio.FD(fds[0])
}

// drain collects everything readable from the read end of a pipe.
func drain(t *testing.T, fd int) string {
	t.Helper()
	var sb strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := rio.ReadFull(rio.FD(fd), buf)
		sb.Write(buf[:n])
		require.NoError(t, err)
		if n < len(buf) {
			return sb.String()
		}
	}
}

func TestCopyBytes(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		in := pipeWith(t, "some bytes with\nnewlines and\x00nuls")

		out := make([]int, 2)
		require.NoError(t, unix.Pipe(out))
		defer unix.Close(out[0])

		require.NoError(t, copyBytes(in, rio.FD(out[1]), 8))
		require.NoError(t, unix.Close(out[1]))

		assert.Equal(t, "some bytes with\nnewlines and\x00nuls", drain(t, out[0]))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		in := pipeWith(t, "")

		out := make([]int, 2)
		require.NoError(t, unix.Pipe(out))
		defer unix.Close(out[0])

		require.NoError(t, copyBytes(in, rio.FD(out[1]), 64))
		require.NoError(t, unix.Close(out[1]))

		assert.Equal(t, "", drain(t, out[0]))
	})

	t.Run("WriteFailure", func(t *testing.T) {
		in := pipeWith(t, "payload")

		err := copyBytes(in, rio.FD(-1), 64)
		assert.ErrorContains(t, err, "write error")
	})

	t.Run("ReadFailure", func(t *testing.T) {
		out := make([]int, 2)
		require.NoError(t, unix.Pipe(out))
		defer unix.Close(out[0])
		defer unix.Close(out[1])

		err := copyBytes(rio.FD(-1), rio.FD(out[1]), 64)
		assert.ErrorContains(t, err, "read error")
	})
}

func TestCopyLines(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		in := pipeWith(t, "one\ntwo\nthree")

		out := make([]int, 2)
		require.NoError(t, unix.Pipe(out))
		defer unix.Close(out[0])

		require.NoError(t, copyLines(in, rio.FD(out[1]), 16, 64))
		require.NoError(t, unix.Close(out[1]))

		assert.Equal(t, "one\ntwo\nthree", drain(t, out[0]))
	})

	t.Run("LongLinesSplitAtCap", func(t *testing.T) {
		in := pipeWith(t, "abcdefgh\n")

		out := make([]int, 2)
		require.NoError(t, unix.Pipe(out))
		defer unix.Close(out[0])

		// Cap of 4 means 3 data bytes per ReadLine; content is preserved.
		require.NoError(t, copyLines(in, rio.FD(out[1]), 16, 4))
		require.NoError(t, unix.Close(out[1]))

		assert.Equal(t, "abcdefgh\n", drain(t, out[0]))
	})
}
