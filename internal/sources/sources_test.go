package sources

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/topic-manager/internal/state"
	"github.com/conn-castle/topic-manager/internal/topic"
)

type testRoot struct {
	sourcePath string
	store      *state.Store
}

func newTestRoot(t *testing.T) testRoot {
	t.Helper()
	root := t.TempDir()
	sourceDir := filepath.Join(root, "etc", "apt", "sources.list.d")
	require.NoError(t, os.MkdirAll(sourceDir, 0o755))
	store, err := state.NewStore(state.RealSystem{}, filepath.Join(root, "var", "lib", "atm", "state"))
	require.NoError(t, err)
	return testRoot{sourcePath: filepath.Join(sourceDir, "atm.list"), store: store}
}

type faultySystem struct {
	RealSystem
	failWrite string
}

func (f faultySystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if filename == f.failWrite {
		return errors.New("disk full")
	}
	return f.RealSystem.WriteFileAtomic(filename, data, perm)
}

type failingStore struct {
	dir string
}

func (f failingStore) WriteRecords([]topic.Previous) error {
	return errors.New("snapshot write failed")
}

func (f failingStore) Dir() string {
	return f.dir
}

func TestRender(t *testing.T) {
	got := Render([]*topic.Manifest{{Name: "gcc"}, {Name: "llvm-17"}})
	want := "# Generated by AOSC Topic Manager. DO NOT EDIT THIS FILE!\n" +
		"# Topic `gcc`\n" +
		"deb https://repo.aosc.io/debs gcc main\n" +
		"# Topic `llvm-17`\n" +
		"deb https://repo.aosc.io/debs llvm-17 main\n"
	assert.Equal(t, want, got)
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, Header, Render(nil))
}

func TestNewMaterializer_Validation(t *testing.T) {
	root := newTestRoot(t)
	_, err := NewMaterializer(nil, root.sourcePath, root.store)
	require.Error(t, err)
	_, err = NewMaterializer(RealSystem{}, root.sourcePath, nil)
	require.Error(t, err)

	m, err := NewMaterializer(RealSystem{}, "", root.store)
	require.NoError(t, err)
	assert.Equal(t, DefaultPath, m.Path())
}

func TestCommit_WritesSourceListAndSnapshot(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(RealSystem{}, root.sourcePath, root.store)
	require.NoError(t, err)

	gcc := &topic.Manifest{Name: "gcc", Enabled: true, Packages: []string{"gcc-12"}}
	require.NoError(t, m.Commit([]*topic.Manifest{gcc}))

	data, err := os.ReadFile(root.sourcePath)
	require.NoError(t, err)
	content := string(data)
	assert.Equal(t, 1, strings.Count(content, "# Topic `gcc`"))
	assert.Equal(t, 1, strings.Count(content, "\ndeb "))
	assert.Contains(t, content, "deb https://repo.aosc.io/debs gcc main\n")

	snapshot, err := root.store.Read()
	require.NoError(t, err)
	assert.Equal(t, []topic.Previous{{Name: "gcc", Packages: []string{"gcc-12"}}}, snapshot)

	assert.FileExists(t, filepath.Join(root.store.Dir(), "lock"))
}

func TestCommit_EmptyClearsEverything(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(RealSystem{}, root.sourcePath, root.store)
	require.NoError(t, err)

	require.NoError(t, m.Commit([]*topic.Manifest{{Name: "gcc", Enabled: true}}))
	require.NoError(t, m.Commit(nil))

	data, err := os.ReadFile(root.sourcePath)
	require.NoError(t, err)
	assert.Equal(t, Header, string(data))

	snapshot, err := root.store.Read()
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestCommit_SourceWriteFailureSkipsSnapshot(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(faultySystem{failWrite: root.sourcePath}, root.sourcePath, root.store)
	require.NoError(t, err)

	err = m.Commit([]*topic.Manifest{{Name: "gcc", Enabled: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write source list")
	assert.NoFileExists(t, root.store.Path())
}

func TestCommit_MissingSourceDirFails(t *testing.T) {
	root := newTestRoot(t)
	path := filepath.Join(filepath.Dir(root.sourcePath), "missing", "atm.list")
	m, err := NewMaterializer(RealSystem{}, path, root.store)
	require.NoError(t, err)

	require.Error(t, m.Commit([]*topic.Manifest{{Name: "gcc", Enabled: true}}))
	assert.NoFileExists(t, root.store.Path())
}

func TestCommit_SnapshotFailureLeavesSourceList(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(RealSystem{}, root.sourcePath, failingStore{dir: root.store.Dir()})
	require.NoError(t, err)

	err = m.Commit([]*topic.Manifest{{Name: "gcc", Enabled: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot write failed")
	assert.FileExists(t, root.sourcePath)
}

func TestPreview(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(RealSystem{}, root.sourcePath, root.store)
	require.NoError(t, err)
	topics := []*topic.Manifest{{Name: "gcc", Enabled: true}}

	diff, err := m.Preview(topics)
	require.NoError(t, err)
	assert.Contains(t, diff, "+deb https://repo.aosc.io/debs gcc main")

	require.NoError(t, m.Commit(topics))
	diff, err = m.Preview(topics)
	require.NoError(t, err)
	assert.Empty(t, diff)

	diff, err = m.Preview(nil)
	require.NoError(t, err)
	assert.Contains(t, diff, "-deb https://repo.aosc.io/debs gcc main")
}

// countingSystem counts state directory creations.
type countingSystem struct {
	RealSystem
	mkdirs *int
}

func (c countingSystem) MkdirAll(path string, perm os.FileMode) error {
	*c.mkdirs++
	return c.RealSystem.MkdirAll(path, perm)
}

func TestCommit_CreatesStateDirOnceBeforeLocking(t *testing.T) {
	root := newTestRoot(t)
	mkdirs := 0
	m, err := NewMaterializer(countingSystem{mkdirs: &mkdirs}, root.sourcePath, root.store)
	require.NoError(t, err)

	require.NoError(t, m.Commit([]*topic.Manifest{{Name: "gcc", Enabled: true}}))
	assert.Equal(t, 1, mkdirs)
}

func TestLocked_CommitRetainingKeepsPendingRecords(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(RealSystem{}, root.sourcePath, root.store)
	require.NoError(t, err)
	pending := []topic.Previous{{Name: "old-topic", Packages: []string{"foo"}}}

	err = m.Locked(func(w *Writer) error {
		return w.CommitRetaining([]*topic.Manifest{{Name: "gcc", Enabled: true}}, pending)
	})
	require.NoError(t, err)

	data, err := os.ReadFile(root.sourcePath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old-topic")

	snapshot, err := root.store.Read()
	require.NoError(t, err)
	assert.Equal(t, []topic.Previous{
		{Name: "gcc", Packages: []string{}},
		{Name: "old-topic", Packages: []string{"foo"}},
	}, snapshot)

	require.NoError(t, m.Locked(func(w *Writer) error {
		return w.Commit([]*topic.Manifest{{Name: "gcc", Enabled: true}})
	}))
	snapshot, err = root.store.Read()
	require.NoError(t, err)
	assert.Equal(t, []topic.Previous{{Name: "gcc", Packages: []string{}}}, snapshot)
}

func TestLocked_PropagatesFnError(t *testing.T) {
	root := newTestRoot(t)
	m, err := NewMaterializer(RealSystem{}, root.sourcePath, root.store)
	require.NoError(t, err)
	want := errors.New("manifest unavailable")

	assert.ErrorIs(t, m.Locked(func(*Writer) error { return want }), want)
	assert.NoFileExists(t, root.sourcePath)
}
