// Package state persists the list of topics that were enabled at the last commit.
//
// The snapshot is what makes closed topics detectable: a topic recorded here but missing
// from the upstream manifest has been closed.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/topic"
)

// ErrMalformedSnapshot wraps snapshot files that exist but cannot be decoded.
var ErrMalformedSnapshot = errors.New(messages.StateMalformed)

// Store reads and writes the persisted topic snapshot at a fixed path.
type Store struct {
	sys  System
	path string
}

// NewStore returns a Store backed by sys and rooted at path.
func NewStore(sys System, path string) (*Store, error) {
	if sys == nil {
		return nil, errors.New(messages.StateSystemRequired)
	}
	if path == "" {
		return nil, errors.New(messages.StatePathRequired)
	}
	return &Store{sys: sys, path: path}, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the snapshot.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Read loads the snapshot. A missing or unreadable file is an error
// (errors.Is(err, fs.ErrNotExist) identifies the missing case) and undecodable
// content wraps ErrMalformedSnapshot. Callers that only need a best-effort
// history should use ReadOrEmpty.
func (s *Store) Read() ([]topic.Previous, error) {
	data, err := s.sys.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf(messages.StateReadFailedFmt, s.path, err)
	}
	var topics []topic.Previous
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("%w: "+messages.StateDecodeFailedFmt, ErrMalformedSnapshot, s.path, err)
	}
	if topics == nil {
		topics = []topic.Previous{}
	}
	return topics, nil
}

// ReadOrEmpty loads the snapshot and treats every failure as an empty history.
func (s *Store) ReadOrEmpty() []topic.Previous {
	topics, err := s.Read()
	if err != nil {
		return []topic.Previous{}
	}
	return topics
}

// Write persists the enabled entries of topics, replacing the previous snapshot.
// Disabled topics are never recorded.
func (s *Store) Write(topics []*topic.Manifest) error {
	return s.WriteRecords(Records(topics))
}

// WriteRecords persists records as the snapshot, replacing the previous one.
func (s *Store) WriteRecords(records []topic.Previous) error {
	data, err := EncodeRecords(records)
	if err != nil {
		return err
	}
	dir := s.Dir()
	if err := s.sys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.StateCreateDirFailedFmt, dir, err)
	}
	if err := s.sys.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf(messages.StateWriteFailedFmt, s.path, err)
	}
	return nil
}

// Records projects the enabled entries of topics onto their persisted form.
func Records(topics []*topic.Manifest) []topic.Previous {
	records := make([]topic.Previous, 0, len(topics))
	for _, t := range topics {
		if t == nil || !t.Enabled {
			continue
		}
		records = append(records, t.ToPrevious())
	}
	return records
}

// Encode returns the snapshot bytes Write would persist for topics.
func Encode(topics []*topic.Manifest) ([]byte, error) {
	return EncodeRecords(Records(topics))
}

// EncodeRecords returns the snapshot bytes for records. A nil list encodes as "[]".
func EncodeRecords(records []topic.Previous) ([]byte, error) {
	if records == nil {
		records = []topic.Previous{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf(messages.StateEncodeFailedFmt, err)
	}
	return append(data, '\n'), nil
}
