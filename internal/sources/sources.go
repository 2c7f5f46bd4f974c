// Package sources materializes the enabled topics into the apt source list and
// records them in the topic snapshot.
package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/state"
	"github.com/conn-castle/topic-manager/internal/topic"
)

const (
	// Header is the first line of the generated source list.
	Header = "# Generated by AOSC Topic Manager. DO NOT EDIT THIS FILE!\n"
	// MirrorURL is the repository base every topic is served from.
	MirrorURL = "https://repo.aosc.io/debs"
	// Component is the archive component of every topic distribution.
	Component = "main"
	// DefaultPath is the apt source list owned by atm.
	DefaultPath = "/etc/apt/sources.list.d/atm.list"

	lockName = "lock"
)

// SnapshotWriter persists the committed topic records.
type SnapshotWriter interface {
	WriteRecords(records []topic.Previous) error
	Dir() string
}

// Render returns the source list content for topics, in input order.
func Render(topics []*topic.Manifest) string {
	var builder strings.Builder
	builder.Grow(len(Header) + 96*len(topics))
	builder.WriteString(Header)
	for _, t := range topics {
		fmt.Fprintf(&builder, "# Topic `%s`\ndeb %s %s %s\n", t.Name, MirrorURL, t.Name, Component)
	}
	return builder.String()
}

// Materializer writes the source list and the snapshot for a set of committed topics.
type Materializer struct {
	sys   System
	path  string
	store SnapshotWriter
}

// NewMaterializer returns a Materializer writing the source list at path and the
// snapshot through store.
func NewMaterializer(sys System, path string, store SnapshotWriter) (*Materializer, error) {
	if sys == nil {
		return nil, errors.New(messages.SourcesSystemRequired)
	}
	if store == nil {
		return nil, errors.New(messages.SourcesStoreRequired)
	}
	if path == "" {
		path = DefaultPath
	}
	return &Materializer{sys: sys, path: path, store: store}, nil
}

// Path returns the source list location.
func (m *Materializer) Path() string {
	return m.path
}

// Commit overwrites the source list with topics, then records the enabled ones in the
// snapshot, holding the commit lock for both writes.
func (m *Materializer) Commit(topics []*topic.Manifest) error {
	return m.Locked(func(w *Writer) error {
		return w.Commit(topics)
	})
}

// Locked runs fn while holding the advisory lock in the state directory, so that a
// whole read-reconcile-commit cycle of one run cannot interleave with another. The
// state directory is created first because the lock file lives in it.
func (m *Materializer) Locked(fn func(w *Writer) error) error {
	stateDir := m.store.Dir()
	if err := m.sys.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf(messages.StateCreateDirFailedFmt, stateDir, err)
	}
	return m.sys.WithFileLock(filepath.Join(stateDir, lockName), func() error {
		return fn(&Writer{m: m})
	})
}

// Writer commits while the lock taken by Materializer.Locked is held.
type Writer struct {
	m *Materializer
}

// Commit overwrites the source list with topics and records the enabled ones in the
// snapshot. The two files are not updated transactionally: if the snapshot write fails
// after the source list was replaced, the next successful commit brings them back in line.
func (w *Writer) Commit(topics []*topic.Manifest) error {
	return w.CommitRetaining(topics, nil)
}

// CommitRetaining is Commit, but also keeps retained in the snapshot without listing
// them in the source list. Closed topics whose packages are not reverted yet are retained
// so that the next run detects them as closed again.
func (w *Writer) CommitRetaining(topics []*topic.Manifest, retained []topic.Previous) error {
	m := w.m
	if err := m.sys.WriteFileAtomic(m.path, []byte(Render(topics)), 0o644); err != nil {
		return fmt.Errorf(messages.SourcesWriteFailedFmt, m.path, err)
	}
	return m.store.WriteRecords(append(state.Records(topics), retained...))
}

// Preview returns a unified diff between the source list on disk and what Commit would
// write for topics. An empty string means the file is already up to date.
func (m *Materializer) Preview(topics []*topic.Manifest) (string, error) {
	current := ""
	data, err := m.sys.ReadFile(m.path)
	switch {
	case err == nil:
		current = string(data)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return "", fmt.Errorf(messages.SourcesReadFailedFmt, m.path, err)
	}
	next := Render(topics)
	if current == next {
		return "", nil
	}
	return udiff.Unified(m.path+" (current)", m.path+" (new)", current, next), nil
}
