package git

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/unicode"
)

// ObjectStore reads loose objects addressed as <dir>/<id[:2]>/<id[2:]>
type ObjectStore struct {
	dir string
}

// NewObjectStore creates an ObjectStore rooted at dir (the objects/ directory)
func NewObjectStore(dir string) *ObjectStore {
	return &ObjectStore{dir: dir}
}

// Path returns the file path of the loose object for hash
func (s *ObjectStore) Path(hash string) string {
	if len(hash) < 3 {
		return filepath.Join(s.dir, hash)
	}
	return filepath.Join(s.dir, hash[:2], hash[2:])
}

// ReadText reads, inflates and permissively decodes the object for hash
func (s *ObjectStore) ReadText(hash string) (string, error) {
	path := s.Path(hash)
	compressed, err := os.ReadFile(path)
	if err != nil {
		return "", &ObjectError{Hash: hash, Path: path, Err: err}
	}

	raw, err := Inflate(compressed)
	if err != nil {
		return "", &ObjectError{Hash: hash, Path: path, Err: err}
	}

	return DecodeText(raw), nil
}

// Inflate decompresses zlib data
func Inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return out, nil
}

// DecodeText decodes data as UTF-8, replacing invalid sequences with U+FFFD.
// The decoder substitutes instead of failing, so there is no error to report.
func DecodeText(data []byte) string {
	out, _ := unicode.UTF8.NewDecoder().Bytes(data)
	return string(out)
}
