// Package manifest fetches the topic manifest advertised by the repository mirror.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/topic"
)

// maxManifestBytes caps the manifest response body.
const maxManifestBytes = 16 << 20

// Source fetches topic manifests over HTTP.
type Source struct {
	URL    string
	Arch   string
	Client *http.Client
}

// NewSource returns a Source with a client bounded by timeout.
func NewSource(url string, arch string, timeout time.Duration) *Source {
	return &Source{
		URL:    url,
		Arch:   arch,
		Client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the manifest and returns the topics available for the source's
// architecture. Every returned topic starts disabled and open; the reconciler decides
// which ones are subscribed.
func (s *Source) Fetch(ctx context.Context) ([]topic.Manifest, error) {
	if s.URL == "" {
		return nil, errors.New(messages.ManifestURLRequired)
	}
	if s.Arch == "" {
		return nil, errors.New(messages.ManifestArchRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestCreateRequestErrFmt, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "atm")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestFetchErrFmt, s.URL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.ManifestStatusFmt, s.URL, resp.Status)
	}

	all, err := Decode(io.LimitReader(resp.Body, maxManifestBytes))
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestDecodeErrFmt, s.URL, err)
	}
	if err := topic.ValidateAll(all); err != nil {
		return nil, fmt.Errorf(messages.ManifestInvalidFmt, s.URL, err)
	}
	return FilterArch(all, s.Arch), nil
}

// Decode reads a JSON array of topic manifests.
func Decode(r io.Reader) ([]topic.Manifest, error) {
	var manifests []topic.Manifest
	if err := json.NewDecoder(r).Decode(&manifests); err != nil {
		return nil, err
	}
	for i := range manifests {
		manifests[i].Enabled = false
		manifests[i].Closed = false
	}
	return manifests, nil
}

// FilterArch keeps the topics that ship packages for arch, preserving order.
func FilterArch(manifests []topic.Manifest, arch string) []topic.Manifest {
	out := make([]topic.Manifest, 0, len(manifests))
	for _, m := range manifests {
		if m.SupportsArch(arch) {
			out = append(out, m)
		}
	}
	return out
}
