package tag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNoTag is returned by Scan when no tag file exists yet.
var ErrNoTag = errors.New("no tag present")

// ErrTagNotEmpty is returned by Write when the tag already carries records.
// Overwriting a wallet tag destroys the only copy of its secret, so the
// caller must wipe explicitly first.
var ErrTagNotEmpty = errors.New("tag already contains data")

// Store emulates a single NFC tag backed by a JSON file on disk. Access is
// serialized: a physical tag services one radio operation at a time.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store persisting records at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

type tagFile struct {
	Records []Record `json:"records"`
}

// Scan reads all records from the tag file.
func (s *Store) Scan(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoTag
		}
		return nil, fmt.Errorf("failed to read tag file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoTag
	}

	var file tagFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tag file: %w", err)
	}
	return file.Records, nil
}

// Write stores records on the tag. Fails with ErrTagNotEmpty if the tag
// already holds data. The cancellation check happens before any byte is
// written, never in the middle of one.
func (s *Store) Write(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if info, err := os.Stat(s.path); err == nil && info.Size() > 0 {
		return ErrTagNotEmpty
	}

	data, err := json.MarshalIndent(tagFile{Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tag file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write tag file: %w", err)
	}
	return nil
}

// Wipe removes the tag file so a new wallet can be written.
func (s *Store) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to wipe tag file: %w", err)
	}
	return nil
}
