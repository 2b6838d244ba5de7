package fileio

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Backup moves an existing file at path out of the way, renaming it to
// path.bak, or path.bak1, path.bak2, ... if that name is taken too. It
// returns the backup name, or "" when path did not exist and nothing
// had to move.
func Backup(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("fileio: backup %s: %w", path, err)
	}

	bak := path + ".bak"
	for n := 1; ; n++ {
		if _, err := os.Stat(bak); err != nil {
			if os.IsNotExist(err) {
				break
			}
			return "", fmt.Errorf("fileio: backup %s: %w", path, err)
		}
		bak = path + ".bak" + strconv.Itoa(n)
	}

	if err := os.Rename(path, bak); err != nil {
		return "", fmt.Errorf("fileio: backup %s: %w", path, err)
	}
	return bak, nil
}

// Open opens path for reading, transparently decompressing when the
// name ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fileio: %s: %w", path, err)
	}
	return &zipReader{zr: zr, f: f}, nil
}

// Create creates (or truncates) path for writing, transparently
// compressing when the name ends in .gz. Callers that must not clobber
// an existing file run Backup first.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	return &zipWriter{zw: gzip.NewWriter(f), f: f}, nil
}

// zipReader closes the gzip layer and the underlying file together.
type zipReader struct {
	zr *gzip.Reader
	f  fs.File
}

func (r *zipReader) Read(p []byte) (int, error) { return r.zr.Read(p) }

func (r *zipReader) Close() error {
	zErr := r.zr.Close()
	fErr := r.f.Close()
	if zErr != nil {
		return zErr
	}
	return fErr
}

// zipWriter flushes the gzip layer before closing the underlying file.
type zipWriter struct {
	zw *gzip.Writer
	f  *os.File
}

func (w *zipWriter) Write(p []byte) (int, error) { return w.zw.Write(p) }

func (w *zipWriter) Close() error {
	zErr := w.zw.Close()
	fErr := w.f.Close()
	if zErr != nil {
		return zErr
	}
	return fErr
}
