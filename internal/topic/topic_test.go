package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPrevious(t *testing.T) {
	prev := Previous{Name: "gcc", Description: "GCC", Date: 7, Packages: []string{"gcc-12"}}
	m := FromPrevious(prev)
	assert.Equal(t, Manifest{
		Name:        "gcc",
		Description: "GCC",
		Date:        7,
		Arch:        []string{},
		Packages:    []string{"gcc-12"},
		Closed:      true,
	}, m)

	m.Packages[0] = "changed"
	assert.Equal(t, "gcc-12", prev.Packages[0], "packages must be copied")
}

func TestToPreviousDropsHostFields(t *testing.T) {
	m := Manifest{Name: "gcc", Date: 3, Arch: []string{"amd64"}, Packages: []string{"a"}, Enabled: true}
	assert.Equal(t, Previous{Name: "gcc", Date: 3, Packages: []string{"a"}}, m.ToPrevious())
}

func TestSupportsArch(t *testing.T) {
	assert.True(t, Manifest{Arch: []string{"amd64", "arm64"}}.SupportsArch("arm64"))
	assert.True(t, Manifest{Arch: []string{"all"}}.SupportsArch("riscv64"))
	assert.False(t, Manifest{Arch: []string{"amd64"}}.SupportsArch("riscv64"))
	assert.False(t, Manifest{}.SupportsArch("amd64"))
}

func TestValidateAll(t *testing.T) {
	require.NoError(t, ValidateAll(nil))
	require.NoError(t, ValidateAll([]Manifest{{Name: "gcc", Packages: []string{"gcc"}}, {Name: "llvm"}}))

	err := ValidateAll([]Manifest{{Name: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	err = ValidateAll([]Manifest{{Name: "gcc"}, {Name: "llvm"}, {Name: "gcc"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `topic 2: name "gcc" duplicates topic 0`)

	err = ValidateAll([]Manifest{{Name: "bad name"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whitespace")

	err = ValidateAll([]Manifest{{Name: "gcc", Date: -1}})
	require.Error(t, err)

	err = ValidateAll([]Manifest{{Name: "gcc", Packages: []string{"ok", ""}}})
	require.Error(t, err)
}

func TestEnabled(t *testing.T) {
	listing := []Manifest{
		{Name: "on", Enabled: true},
		{Name: "off"},
		{Name: "closed", Enabled: true, Closed: true},
		{Name: "also-on", Enabled: true},
	}
	enabled := Enabled(listing)
	require.Len(t, enabled, 2)
	assert.Equal(t, "on", enabled[0].Name)
	assert.Equal(t, "also-on", enabled[1].Name)
	assert.Same(t, &listing[0], enabled[0])
}

func TestNames(t *testing.T) {
	names := Names([]Manifest{{Name: "a"}, {Name: "b"}})
	assert.Len(t, names, 2)
	assert.Contains(t, names, "a")
}
