package codec_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/discochess/maxsized/internal/codec"
	"github.com/discochess/maxsized/internal/codec/gzipcodec"
	"github.com/discochess/maxsized/internal/codec/noopcodec"
	"github.com/discochess/maxsized/internal/codec/zstdcodec"
)

func allCodecs() []codec.Codec {
	return []codec.Codec{noopcodec.New(), gzipcodec.New(), zstdcodec.New()}
}

func roundTrip(t *testing.T, c codec.Codec, original []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	w, err := c.Writer(&compressed)
	if err != nil {
		t.Fatalf("Writer() error = %v", err)
	}
	if _, err := w.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := c.Reader(&compressed)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return out
}

func TestCodecs_RoundTrip(t *testing.T) {
	trace := []byte(strings.Repeat("put 1 one\nget 1\nreplace 1 uno\n", 500))

	for _, c := range allCodecs() {
		t.Run("ext="+c.Extension(), func(t *testing.T) {
			if got := roundTrip(t, c, trace); !bytes.Equal(got, trace) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(trace))
			}
			if got := roundTrip(t, c, nil); len(got) != 0 {
				t.Errorf("empty round trip returned %q", got)
			}
		})
	}
}

func TestZstd_Levels(t *testing.T) {
	trace := []byte(strings.Repeat("put 2 two\nget 2\n", 1000))

	for _, level := range []zstd.EncoderLevel{zstd.SpeedFastest, zstd.SpeedBestCompression} {
		t.Run(level.String(), func(t *testing.T) {
			if got := roundTrip(t, zstdcodec.NewWithLevel(level), trace); !bytes.Equal(got, trace) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(trace))
			}
		})
	}
}

func TestCodecs_RejectGarbage(t *testing.T) {
	for _, c := range []codec.Codec{gzipcodec.New(), zstdcodec.New()} {
		t.Run(c.Extension(), func(t *testing.T) {
			r, err := c.Reader(bytes.NewReader([]byte("definitely not compressed")))
			if err != nil {
				return
			}
			defer r.Close()
			if _, err := io.ReadAll(r); err == nil {
				t.Error("expected an error decoding invalid data")
			}
		})
	}
}

func TestForPath(t *testing.T) {
	plain := noopcodec.New()
	gz := gzipcodec.New()
	zst := zstdcodec.New()

	tests := []struct {
		path string
		want codec.Codec
	}{
		{"ops.txt", plain},
		{"ops.txt.gz", gz},
		{"ops.zst", zst},
		{"zst", plain},
		{"", plain},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := codec.ForPath(tt.path, plain, gz, zst); got != tt.want {
				t.Errorf("ForPath(%q) = %T(%q), want %T(%q)", tt.path, got, got.Extension(), tt.want, tt.want.Extension())
			}
		})
	}
}
