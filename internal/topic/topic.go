// Package topic defines the topic records shared by the reconciler, the snapshot store and
// the source list materializer.
package topic

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/conn-castle/topic-manager/internal/messages"
)

// Manifest is the current state of one topic as advertised upstream.
// Enabled and Closed are host-side flags and never travel over the wire.
type Manifest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Date        int64    `json:"date"`
	Arch        []string `json:"arch"`
	Packages    []string `json:"packages"`
	Enabled     bool     `json:"-"`
	Closed      bool     `json:"-"`
}

// Previous is the persisted record of a topic that was enabled at the last commit.
type Previous struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Date        int64    `json:"date"`
	Packages    []string `json:"packages"`
}

// FromPrevious builds the closed manifest for a persisted topic that no longer exists upstream.
func FromPrevious(prev Previous) Manifest {
	return Manifest{
		Name:        prev.Name,
		Description: prev.Description,
		Date:        prev.Date,
		Arch:        []string{},
		Packages:    clonePackages(prev.Packages),
		Enabled:     false,
		Closed:      true,
	}
}

// ToPrevious projects m onto its persisted form.
func (m Manifest) ToPrevious() Previous {
	return Previous{
		Name:        m.Name,
		Description: m.Description,
		Date:        m.Date,
		Packages:    clonePackages(m.Packages),
	}
}

func clonePackages(packages []string) []string {
	out := make([]string, len(packages))
	copy(out, packages)
	return out
}

// SupportsArch reports whether the topic carries packages for arch.
// Topics listing "all" are architecture independent.
func (m Manifest) SupportsArch(arch string) bool {
	for _, a := range m.Arch {
		if a == arch || a == "all" {
			return true
		}
	}
	return false
}

// Validate checks the fields an upstream manifest entry must carry.
func (m Manifest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.By(noWhitespace)),
		validation.Field(&m.Date, validation.Min(int64(0))),
		validation.Field(&m.Packages, validation.Each(validation.Required)),
	)
}

// noWhitespace rejects names that would break the generated deb line.
func noWhitespace(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, " \t\r\n") {
		return validation.NewError("validation_topic_name_whitespace", "must not contain whitespace")
	}
	return nil
}

// ValidateAll validates every manifest and rejects duplicate names.
func ValidateAll(manifests []Manifest) error {
	seen := make(map[string]int, len(manifests))
	for i, m := range manifests {
		if m.Name == "" {
			return fmt.Errorf(messages.TopicNameRequiredFmt, i)
		}
		if prior, ok := seen[m.Name]; ok {
			return fmt.Errorf(messages.TopicDuplicateNameFmt, i, m.Name, prior)
		}
		seen[m.Name] = i
		if err := m.Validate(); err != nil {
			return fmt.Errorf(messages.TopicInvalidFmt, m.Name, err)
		}
	}
	return nil
}

// Names returns the set of topic names in manifests.
func Names(manifests []Manifest) map[string]struct{} {
	names := make(map[string]struct{}, len(manifests))
	for _, m := range manifests {
		names[m.Name] = struct{}{}
	}
	return names
}

// Enabled returns pointers to the entries that should stay subscribed after a commit:
// enabled and not closed upstream.
func Enabled(listing []Manifest) []*Manifest {
	out := make([]*Manifest, 0, len(listing))
	for i := range listing {
		if listing[i].Enabled && !listing[i].Closed {
			out = append(out, &listing[i])
		}
	}
	return out
}
