package sqlout

import (
	"fmt"
	"os"
	"path/filepath"
)

// Staged is an output file written to a temporary name next to its
// destination and not yet moved into place
type Staged struct {
	path string
	tmp  string
}

// Stage writes data to a temporary file in the directory of path. The
// destination is untouched until Commit.
func Stage(path string, data []byte) (*Staged, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("error creating temporary file: %w", err)
	}
	s := &Staged{path: path, tmp: tmp.Name()}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.Discard()
		return nil, fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		s.Discard()
		return nil, fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := os.Chmod(s.tmp, 0644); err != nil {
		s.Discard()
		return nil, fmt.Errorf("error setting permissions on %s: %w", path, err)
	}

	return s, nil
}

// Path returns the destination path
func (s *Staged) Path() string {
	return s.path
}

// Commit moves the staged file into place
func (s *Staged) Commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		s.Discard()
		return fmt.Errorf("error replacing %s: %w", s.path, err)
	}
	s.tmp = ""
	return nil
}

// Discard removes the temporary file. It is a no-op after Commit.
func (s *Staged) Discard() {
	if s.tmp != "" {
		os.Remove(s.tmp)
		s.tmp = ""
	}
}

// Batch is a set of staged files committed together
type Batch struct {
	files []*Staged
}

// Add stages one more file. On error the batch is left as it was.
func (b *Batch) Add(path string, data []byte) error {
	s, err := Stage(path, data)
	if err != nil {
		return err
	}
	b.files = append(b.files, s)
	return nil
}

// Commit moves every staged file into place. Files after a failed rename
// are discarded.
func (b *Batch) Commit() error {
	for i, s := range b.files {
		if err := s.Commit(); err != nil {
			for _, rest := range b.files[i+1:] {
				rest.Discard()
			}
			return err
		}
	}
	return nil
}

// Discard removes every staged file that has not been committed
func (b *Batch) Discard() {
	for _, s := range b.files {
		s.Discard()
	}
}

// WriteFile replaces path with data. The data goes to a temporary file in
// the same directory first, so a failed write never leaves a partial file.
func WriteFile(path string, data []byte) error {
	var b Batch
	if err := b.Add(path, data); err != nil {
		return err
	}
	return b.Commit()
}
