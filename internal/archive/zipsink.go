package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
)

// ZipSink writes vault members into a zip stream. The caller owns the
// underlying writer and closes it after Close finalizes the archive.
type ZipSink struct {
	zw *zip.Writer
}

// NewZipSink creates a sink writing zip members to w.
func NewZipSink(w io.Writer) *ZipSink {
	return &ZipSink{zw: zip.NewWriter(w)}
}

// WriteFile appends one deflate-compressed member to the archive.
func (s *ZipSink) WriteFile(name string, r io.Reader) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	}

	w, err := s.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip member %s: %w", name, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("writing zip member %s: %w", name, err)
	}
	return nil
}

// Close writes the central directory and finalizes the zip stream.
func (s *ZipSink) Close() error {
	if err := s.zw.Close(); err != nil {
		return fmt.Errorf("finalizing zip: %w", err)
	}
	return nil
}

// NewZipFileSink creates the zip file at path and returns a sink that owns
// the file handle. Close finalizes the archive, then closes the file. The
// caller is expected to have checked the path with EnsureAbsent first.
func NewZipFileSink(fs afero.Fs, path string) (Sink, error) {
	file, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &zipFileSink{ZipSink: NewZipSink(file), file: file}, nil
}

type zipFileSink struct {
	*ZipSink
	file afero.File
}

func (s *zipFileSink) Close() error {
	if err := s.ZipSink.Close(); err != nil {
		_ = s.file.Close()
		return err
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("closing zip file: %w", err)
	}
	return nil
}
