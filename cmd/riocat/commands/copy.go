package commands

import (
	"fmt"

	"github.com/devraider/rio/internal/logger"
	"github.com/devraider/rio/pkg/config"
	"github.com/devraider/rio/pkg/rio"
)

// Copy moves stdin to stdout according to cfg.
func Copy(cfg *config.Config) error {
	switch cfg.Copy.Mode {
	case config.ModeLines:
		return copyLines(rio.Stdin, rio.Stdout, cfg.Copy.BufferSize.Int(), cfg.Copy.MaxLineSize.Int())
	default:
		return copyBytes(rio.Stdin, rio.Stdout, cfg.Copy.BufferSize.Int())
	}
}

// copyBytes is the byte-exact echo loop: full reads of bufSize, full writes
// of whatever arrived. A short read signals end-of-stream.
func copyBytes(in, out rio.Descriptor, bufSize int) error {
	buf := make([]byte, bufSize)
	var copied uint64

	for {
		n, err := rio.ReadFull(in, buf)
		if n > 0 {
			if _, werr := rio.WriteFull(out, buf[:n]); werr != nil {
				return fmt.Errorf("write error: %w", werr)
			}
			copied += uint64(n)
		}
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}
		if n < len(buf) {
			break
		}
	}

	logger.Debug("copy complete", "mode", config.ModeBytes, "bytes", copied)
	return nil
}

// copyLines consumes input one line at a time through the buffered reader.
// Lines longer than the cap come out split; the final line may be
// unterminated.
func copyLines(in, out rio.Descriptor, bufSize, maxLine int) error {
	r := rio.NewReaderSize(in, bufSize)
	line := make([]byte, maxLine)
	var copied, lines uint64

	for {
		n, err := r.ReadLine(line)
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}
		if n == 0 {
			break
		}
		if _, werr := rio.WriteFull(out, line[:n]); werr != nil {
			return fmt.Errorf("write error: %w", werr)
		}
		copied += uint64(n)
		lines++
	}

	logger.Debug("copy complete", "mode", config.ModeLines, "bytes", copied, "lines", lines)
	return nil
}
