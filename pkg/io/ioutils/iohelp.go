package ioutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

// OpenInput opens a file path or stdin ("-" or "") for reading. Gzip input
// is unwrapped transparently, detected by extension or magic bytes.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return sniffGzip(bufio.NewReader(os.Stdin), func() error { return nil })
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".gz" {
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return readCloser{Reader: zr, closeFn: func() error { _ = zr.Close(); return f.Close() }}, nil
	}
	return sniffGzip(bufio.NewReader(f), f.Close)
}

func sniffGzip(br *bufio.Reader, closeFn func() error) (io.ReadCloser, error) {
	b, err := br.Peek(2)
	if err == nil && len(b) == 2 && b[0] == 0x1f && b[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = closeFn()
			return nil, err
		}
		return readCloser{Reader: zr, closeFn: func() error { _ = zr.Close(); return closeFn() }}, nil
	}
	return readCloser{Reader: br, closeFn: closeFn}, nil
}

// CreateOutput creates a file path or stdout ("-" or "") for writing. A .gz
// extension produces gzip-compressed output.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return writeCloser{Writer: bufio.NewWriter(os.Stdout), closeFn: func() error { return nil }}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".gz" {
		zw := gzip.NewWriter(f)
		closeFn := func() error {
			// a failed gzip flush must surface, not just the file close
			if err := zw.Close(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}
		return writeCloser{Writer: zw, closeFn: closeFn}, nil
	}
	return writeCloser{Writer: bufio.NewWriter(f), closeFn: f.Close}, nil
}

type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r readCloser) Close() error { return r.closeFn() }

type writeCloser struct {
	io.Writer
	closeFn func() error
}

func (w writeCloser) Close() error {
	if bw, ok := w.Writer.(*bufio.Writer); ok {
		if err := bw.Flush(); err != nil {
			_ = w.closeFn()
			return err
		}
	}
	return w.closeFn()
}
