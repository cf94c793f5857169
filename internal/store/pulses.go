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
	"sync"

	"pulse-insights/internal/model"
	"pulse-insights/internal/pulse"
)

// StoreHeader is the fixed column layout of the persisted pulse store.
const StoreHeader = "timestamp,team_id,emp_hash,rating_1to5,comment_text"

// ErrReadOnly is returned when a submission hits the read-only seed store.
var ErrReadOnly = errors.New("pulse store is read-only")

// Provider is the append-only record store. Snapshot returns a stable
// point-in-time view: a concurrent append may or may not be visible, but a
// torn row never is.
type Provider interface {
	Snapshot() ([]model.PulseRecord, error)
	Append(rec model.PulseRecord) error
}

// NewProvider selects the storage strategy once at startup. "readonly"
// serves the seed file directly and rejects appends; anything else gets the
// writable store seeded from the sample data.
func NewProvider(mode, storePath, seedPath string) (Provider, error) {
	if mode == "readonly" {
		return &ReadOnlyStore{path: seedPath}, nil
	}
	return NewWritableStore(storePath, seedPath)
}

// ------------------- writable store -------------------

// WritableStore appends submissions to a CSV file, created from the seed
// sample (or a bare header) the first time the process needs it. The seed
// probe happens here once, never per request.
type WritableStore struct {
	mu   sync.Mutex
	path string
}

func NewWritableStore(path, seedPath string) (*WritableStore, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to probe pulse store: %w", err)
		}
		if err := seedStore(path, seedPath); err != nil {
			return nil, err
		}
	}
	return &WritableStore{path: path}, nil
}

func seedStore(path, seedPath string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	seed, err := os.ReadFile(seedPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read seed store: %w", err)
		}
		seed = []byte(StoreHeader + "\n")
	}
	if err := os.WriteFile(path, seed, 0644); err != nil {
		return fmt.Errorf("failed to seed pulse store: %w", err)
	}
	return nil
}

// Snapshot reads the whole store into memory before parsing, so a report
// computation never observes a row that is still being appended.
func (s *WritableStore) Snapshot() ([]model.PulseRecord, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to read pulse store: %w", err)
	}
	return parseStore(bytes.NewReader(data))
}

// Append writes one record as a single quoted CSV row. csv.Writer wraps
// fields containing commas, quotes or newlines and doubles internal quotes,
// so comment text round-trips exactly.
func (s *WritableStore) Append(rec model.PulseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open pulse store for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordFields(rec)); err != nil {
		return fmt.Errorf("failed to append pulse record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to append pulse record: %w", err)
	}
	return nil
}

func recordFields(rec model.PulseRecord) []string {
	return []string{
		rec.Timestamp.Format("2006-01-02"),
		rec.TeamID,
		rec.EmpHash,
		strconv.Itoa(rec.Rating),
		rec.CommentText,
	}
}

// ------------------- read-only seed store -------------------

// ReadOnlyStore serves the seeded sample directly and rejects writes.
type ReadOnlyStore struct {
	path string
}

func (s *ReadOnlyStore) Snapshot() ([]model.PulseRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed store: %w", err)
	}
	return parseStore(bytes.NewReader(data))
}

func (s *ReadOnlyStore) Append(model.PulseRecord) error {
	return ErrReadOnly
}

func parseStore(r io.Reader) ([]model.PulseRecord, error) {
	rows, err := pulse.ReadRows(r)
	if err != nil {
		return nil, err
	}
	return pulse.ParseRecords(rows), nil
}
