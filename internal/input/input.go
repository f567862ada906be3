package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Open returns a reader for path. "-" is stdin; files ending in .zst are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &zstdFile{dec: dec, f: f}, nil
}

type zstdFile struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdFile) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdFile) Close() error {
	z.dec.Close()
	return z.f.Close()
}

// ReadLines reads path and returns its lines as written, blank ones included,
// so that an index into the result is the line number minus one.
func ReadLines(path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Lines(rc)
}

// Lines is ReadLines for an already open reader.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
