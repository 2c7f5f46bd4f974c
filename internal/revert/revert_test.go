package revert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/topic-manager/internal/topic"
)

type installedSet map[string]bool

func (s installedSet) Has(name string) bool { return s[name] }

type fakeOracle struct {
	set installedSet
	err error
}

func (f fakeOracle) Installed() (Installed, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.set, nil
}

func closedTopic(name string, packages ...string) topic.Manifest {
	return topic.FromPrevious(topic.Previous{Name: name, Packages: packages})
}

func TestCompute_OnlyInstalled(t *testing.T) {
	closed := []topic.Manifest{closedTopic("T", "a", "b")}

	got := Compute(closed, installedSet{"a": true})
	assert.Equal(t, []Directive{{Package: "a", Channel: "stable"}}, got)

	got = Compute(closed, installedSet{"a": true, "b": true})
	assert.Equal(t, []Directive{{Package: "a", Channel: StableChannel}, {Package: "b", Channel: StableChannel}}, got)
}

func TestCompute_OrderAndNoDedup(t *testing.T) {
	closed := []topic.Manifest{
		closedTopic("first", "z", "shared", "a"),
		closedTopic("second", "shared", "m"),
	}
	installed := installedSet{"z": true, "a": true, "shared": true, "m": true}

	got := Targets(Compute(closed, installed))
	assert.Equal(t, []string{"z/stable", "shared/stable", "a/stable", "shared/stable", "m/stable"}, got)
}

func TestCompute_NothingInstalled(t *testing.T) {
	got := Compute([]topic.Manifest{closedTopic("T", "a")}, installedSet{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, Compute(nil, installedSet{"a": true}))
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "gcc-12/stable", Directive{Package: "gcc-12", Channel: StableChannel}.String())
}

func TestFromOracle(t *testing.T) {
	closed := []topic.Manifest{closedTopic("T", "a", "b")}

	got, err := FromOracle(closed, fakeOracle{set: installedSet{"b": true}})
	require.NoError(t, err)
	assert.Equal(t, []Directive{{Package: "b", Channel: StableChannel}}, got)
}

func TestFromOracle_Failure(t *testing.T) {
	cause := errors.New("dpkg status unreadable")
	got, err := FromOracle([]topic.Manifest{closedTopic("T", "a")}, fakeOracle{err: cause})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInstalledUnavailable)
	assert.ErrorIs(t, err, cause)

	_, err = FromOracle(nil, nil)
	require.Error(t, err)
}
