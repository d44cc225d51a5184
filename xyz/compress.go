package xyz

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//flate compression level for writing; zstd and gzip pick their own.
const flateLevel = 6

//zstd.Decoder does not implement io.ReadCloser (its Close returns
//nothing), so it gets a thin wrapper.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the decoder. It can not be used after this call.
func (s zstdql) Close() error {
	s.closeql()
	return nil
}

//checkName verifies that name designates an XYZ trajectory: after
//stripping at most one recognized compression suffix, the name must end
//in ".xyz".
func checkName(name string) error {
	base := name
	for _, suf := range []string{".gz", ".zst", ".flate"} {
		if strings.HasSuffix(base, suf) {
			base = strings.TrimSuffix(base, suf)
			break
		}
	}
	if !strings.HasSuffix(base, ".xyz") {
		return Error{kind: WrongFormat, message: "file must have the .xyz extension, got " + name, filename: name, line: -1, critical: true}
	}
	return nil
}

//wrapReader returns a reader that decompresses a according to the
//suffix of name. Plain .xyz files pass through untouched.
func wrapReader(a io.Reader, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(a)
	case strings.HasSuffix(name, ".zst"):
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &zstdql{r.Close, r}, nil
	case strings.HasSuffix(name, ".flate"):
		return flate.NewReader(a), nil
	default:
		return io.NopCloser(a), nil
	}
}

//wrapWriter is the writing counterpart of wrapReader.
func wrapWriter(a io.Writer, name string) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriter(a), nil
	case strings.HasSuffix(name, ".zst"):
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".flate"):
		return flate.NewWriter(a, flateLevel)
	default:
		return nopWriteCloser{a}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
