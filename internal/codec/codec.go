// Package codec provides compression and decompression for trace files.
package codec

import (
	"io"
	"strings"
)

// Codec provides compression and decompression functionality.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g., "zst", "gz").
	// Returns empty string for no compression.
	Extension() string
}

// ForPath returns the first codec whose extension matches path's suffix,
// or fallback if none does.
func ForPath(path string, fallback Codec, codecs ...Codec) Codec {
	for _, c := range codecs {
		if ext := c.Extension(); ext != "" && strings.HasSuffix(path, "."+ext) {
			return c
		}
	}
	return fallback
}
