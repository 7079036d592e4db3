// Package store persists the contact list as a comma-delimited text file,
// one record per line.
package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/logging"
)

// fieldSep separates fields within a line. Values are not escaped, so a
// field containing it does not survive a reload.
const fieldSep = ","

// FileStore reads and rewrites the whole contacts file.
type FileStore struct {
	path   string
	atomic bool
	log    *logging.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithAtomicWrite selects write-to-temp-then-rename (true) or in-place
// truncate-and-write (false) for Save.
func WithAtomicWrite(atomic bool) Option {
	return func(s *FileStore) {
		s.atomic = atomic
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(l *logging.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.log = l
		}
	}
}

// NewFileStore creates a FileStore backed by path. Atomic writes are on by
// default.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{path: path, atomic: true, log: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every well-formed line from the backing file.
// A missing file yields an empty list and no error. Lines that do not hold
// exactly three fields are skipped.
func (s *FileStore) Load() ([]contact.Contact, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []contact.Contact{}, nil
		}
		return nil, fmt.Errorf("store: reading %s: %w", s.path, err)
	}
	defer f.Close()

	// Lines have no length limit; a Scanner would fail past its token size.
	contacts := []contact.Contact{}
	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("store: reading %s: %w", s.path, err)
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		c, ok := ParseLine(strings.TrimSuffix(line, "\n"))
		if !ok {
			s.log.Warn("skipping malformed line", "path", s.path, "line", lineNo)
		} else {
			contacts = append(contacts, c)
		}
		if err != nil {
			break
		}
	}

	s.log.Debug("loaded contacts", "path", s.path, "count", len(contacts))
	return contacts, nil
}

// Save replaces the backing file with one line per contact.
func (s *FileStore) Save(contacts []contact.Contact) error {
	var buf bytes.Buffer
	for _, c := range contacts {
		buf.WriteString(FormatLine(c))
		buf.WriteByte('\n')
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: creating directory: %w", err)
		}
	}

	var err error
	if s.atomic {
		err = s.writeAtomic(buf.Bytes())
	} else {
		err = os.WriteFile(s.path, buf.Bytes(), 0o644)
	}
	if err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}

	s.log.Debug("saved contacts", "path", s.path, "count", len(contacts))
	return nil
}

// writeAtomic writes data to a sibling temp file and renames it over the
// target so readers never observe a half-written file.
func (s *FileStore) writeAtomic(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

// FormatLine encodes a contact as name,phone,email.
func FormatLine(c contact.Contact) string {
	return c.Name + fieldSep + c.Phone + fieldSep + c.Email
}

// ParseLine decodes a single line. It reports false unless the line splits
// into exactly three fields once trailing empty fields are dropped, so
// "a,b,c," still loads while "a,b," does not. Fields are kept verbatim.
func ParseLine(line string) (contact.Contact, bool) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.Split(line, fieldSep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 3 {
		return contact.Contact{}, false
	}
	return contact.Contact{Name: parts[0], Phone: parts[1], Email: parts[2]}, true
}
