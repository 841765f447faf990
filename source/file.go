package source

import (
	"bufio"
	"os"
)

// FileReader is a buffered, file-backed Reader.
type FileReader struct {
	f *os.File
	r *bufio.Reader
}

// NewFileReader opens path and wraps it in a buffered reader. Returns an
// *IoError{Kind: ErrOpen} if the file cannot be opened.
func NewFileReader(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Kind: ErrOpen, Cause: err}
	}
	return &FileReader{f: f, r: bufio.NewReader(f)}, nil
}

// ReadByte returns the next byte, io.EOF at end of file, or an
// *IoError{Kind: ErrRead} on any other failure.
func (r *FileReader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		if err == EndOfStream {
			return 0, err
		}
		return 0, &IoError{Kind: ErrRead, Cause: err}
	}
	return b, nil
}

// Close releases the underlying file handle.
func (r *FileReader) Close() error {
	return r.f.Close()
}
