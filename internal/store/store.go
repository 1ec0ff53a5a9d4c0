package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"bckl/internal/backlog"
)

// ErrLocked reports that the backlog file is held by another process and
// no write was performed.
var ErrLocked = errors.New("backlog file locked")

// entryColumns is the fixed CSV column count: title, difficulty,
// description, timestamp.
const entryColumns = 4

// Store prepends entries to a single CSV file. It assumes one writer at a
// time; contention is detected and reported, not waited out.
type Store struct {
	path string
}

// New constructs a store for the given CSV path. The file is created on
// first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backlog file location.
func (s *Store) Path() string {
	return s.path
}

// Prepend writes entry as the first row of the backlog file atomically.
// The entry must validate; invalid entries are never written.
func (s *Store) Prepend(entry backlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("store prepend: invalid entry: %w", err)
	}

	// Probe the lock without blocking. A held lock must fail fast rather
	// than hang the caller.
	lock := flock.New(s.path)
	held, err := lock.TryLock()
	if err != nil {
		if isContentionErr(err) {
			return fmt.Errorf("%w: %s", ErrLocked, s.path)
		}
		return fmt.Errorf("store prepend: probe lock: %w", err)
	}
	if !held {
		return fmt.Errorf("%w: %s", ErrLocked, s.path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmpPath, err := s.stageTemp(entry)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		if isContentionErr(err) {
			return fmt.Errorf("%w: %s", ErrLocked, s.path)
		}
		return fmt.Errorf("store prepend: replace %s: %w", s.path, err)
	}
	return nil
}

// stageTemp writes the new row followed by the current file content into a
// fresh temp file beside the target and returns its path. The caller owns
// the rename; on any error the temp file is already removed.
func (s *Store) stageTemp(entry backlog.Entry) (string, error) {
	prior, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			if isContentionErr(err) {
				return "", fmt.Errorf("%w: %s", ErrLocked, s.path)
			}
			return "", fmt.Errorf("store prepend: read %s: %w", s.path, err)
		}
		prior = nil
	}

	row, err := marshalRow(entry)
	if err != nil {
		return "", fmt.Errorf("store prepend: encode row: %w", err)
	}

	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	var buf bytes.Buffer
	buf.Write(row)
	buf.Write(prior)
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("store prepend: write temp file: %w", err)
	}
	return tmpPath, nil
}

// Read parses the backlog file back into entries, first row first. A
// missing file reads as empty. The parser is the same CSV dialect used by
// Prepend, so written entries round-trip losslessly.
func (s *Store) Read() ([]backlog.Entry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store read: open %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = entryColumns

	var entries []backlog.Entry
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}
			return nil, fmt.Errorf("store read: parse %s: %w", s.path, err)
		}
		entry, err := rowToEntry(record)
		if err != nil {
			return nil, fmt.Errorf("store read: parse %s: %w", s.path, err)
		}
		entries = append(entries, entry)
	}
}

func marshalRow(entry backlog.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{
		entry.Title,
		strconv.Itoa(entry.Difficulty),
		entry.Description,
		entry.Timestamp,
	}); err != nil {
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rowToEntry(record []string) (backlog.Entry, error) {
	difficulty, err := strconv.Atoi(record[1])
	if err != nil {
		return backlog.Entry{}, fmt.Errorf("difficulty %q: %w", record[1], err)
	}
	return backlog.Entry{
		Title:       record[0],
		Difficulty:  difficulty,
		Description: record[2],
		Timestamp:   record[3],
	}, nil
}

// isContentionErr matches errors that indicate another process holds the
// file, which vary by platform (flock contention on Unix, sharing or
// permission violations on Windows).
func isContentionErr(err error) bool {
	return errors.Is(err, os.ErrPermission)
}
