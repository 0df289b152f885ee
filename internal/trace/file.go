package trace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/discochess/maxsized/internal/codec"
	"github.com/discochess/maxsized/internal/codec/gzipcodec"
	"github.com/discochess/maxsized/internal/codec/noopcodec"
	"github.com/discochess/maxsized/internal/codec/zstdcodec"
)

// codecFor picks the codec from the file extension: .zst, .gz, or plain.
// level only affects zstd encoding.
func codecFor(path string, level zstd.EncoderLevel) codec.Codec {
	return codec.ForPath(path, noopcodec.New(), zstdcodec.NewWithLevel(level), gzipcodec.New())
}

// ReadFile parses the trace at path, decompressing it if needed.
func ReadFile(path string) (ops []Op, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	r, err := codecFor(path, zstd.SpeedDefault).Reader(f)
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}
	defer func() {
		err = errors.Join(err, closeCodec(r, f))
	}()

	ops, err = Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ops, nil
}

// WriteFile writes ops to path, compressing according to its extension.
func WriteFile(path string, ops []Op) error {
	return WriteFileLevel(path, ops, zstd.SpeedDefault)
}

// WriteFileLevel is WriteFile with an explicit zstd encoder level for .zst
// paths.
func WriteFileLevel(path string, ops []Op, level zstd.EncoderLevel) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	w, err := codecFor(path, level).Writer(f)
	if err != nil {
		return fmt.Errorf("creating encoder: %w", err)
	}
	if err := Write(w, ops); err != nil {
		closeCodec(w, f)
		return fmt.Errorf("writing trace: %w", err)
	}
	return closeCodec(w, f)
}

// closeCodec closes a codec stream wrapped around f. Plain traces use f
// itself as the stream, which the caller closes.
func closeCodec(c io.Closer, f *os.File) error {
	if c == io.Closer(f) {
		return nil
	}
	return c.Close()
}
