// Package reconcile merges the persisted topic snapshot with the current upstream manifest.
package reconcile

import "github.com/conn-castle/topic-manager/internal/topic"

// SnapshotReader is the subset of the snapshot store the reconciler reads from.
type SnapshotReader interface {
	Read() ([]topic.Previous, error)
	ReadOrEmpty() []topic.Previous
}

// ClosedTopics returns the persisted topics whose names are absent from current,
// in persisted order.
func ClosedTopics(current []topic.Manifest, previous []topic.Previous) []topic.Previous {
	names := topic.Names(current)
	closed := make([]topic.Previous, 0)
	for _, prev := range previous {
		if _, ok := names[prev.Name]; !ok {
			closed = append(closed, prev)
		}
	}
	return closed
}

// DisplayListing merges current and previous into one entry per distinct name.
//
// Persisted topics still present upstream mark the current entry enabled; persisted topics
// missing upstream are synthesized as closed, disabled entries with no architectures and come
// first, in persisted order. Current entries follow in their original order. Neither input
// is modified.
func DisplayListing(current []topic.Manifest, previous []topic.Previous) []topic.Manifest {
	index := make(map[string]int, len(current))
	merged := make([]topic.Manifest, len(current))
	for i, m := range current {
		merged[i] = m
		index[m.Name] = i
	}

	listing := make([]topic.Manifest, 0, len(current)+len(previous))
	for _, prev := range previous {
		if i, ok := index[prev.Name]; ok {
			merged[i].Enabled = true
			continue
		}
		listing = append(listing, topic.FromPrevious(prev))
	}
	return append(listing, merged...)
}

// Closed reads the snapshot from store and returns the closed topics as manifests ready
// for the revert calculator. Detecting closed topics needs history, so a missing or
// malformed snapshot is returned as an error.
func Closed(store SnapshotReader, current []topic.Manifest) ([]topic.Manifest, error) {
	previous, err := store.Read()
	if err != nil {
		return nil, err
	}
	closed := ClosedTopics(current, previous)
	out := make([]topic.Manifest, 0, len(closed))
	for _, prev := range closed {
		out = append(out, topic.FromPrevious(prev))
	}
	return out, nil
}

// Listing reads the snapshot from store and builds the display listing. It never fails:
// an unreadable snapshot counts as an empty history so current topics can still be shown.
func Listing(store SnapshotReader, current []topic.Manifest) []topic.Manifest {
	return DisplayListing(current, store.ReadOrEmpty())
}
