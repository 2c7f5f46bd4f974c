// Package revert computes which installed packages must go back to the stable channel
// once the topics that provided them have been closed.
package revert

import (
	"errors"
	"fmt"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/topic"
)

// StableChannel is the channel packages from closed topics are pinned back to.
const StableChannel = "stable"

// ErrInstalledUnavailable wraps failures to obtain the installed package set.
var ErrInstalledUnavailable = errors.New(messages.RevertInstalledUnavailable)

// Directive asks for Package to be reinstalled from Channel.
type Directive struct {
	Package string `json:"package"`
	Channel string `json:"channel"`
}

// String renders the directive as an apt install target, e.g. "gcc-12/stable".
func (d Directive) String() string {
	return d.Package + "/" + d.Channel
}

// Installed reports whether a package is currently installed.
type Installed interface {
	Has(name string) bool
}

// Oracle produces the installed package set.
type Oracle interface {
	Installed() (Installed, error)
}

// Compute returns one directive per (topic, package) pair whose package is installed,
// in topic order then package order. Packages shared by several closed topics are
// reported once per topic.
func Compute(closed []topic.Manifest, installed Installed) []Directive {
	directives := make([]Directive, 0)
	for _, t := range closed {
		for _, pkg := range t.Packages {
			if installed.Has(pkg) {
				directives = append(directives, Directive{Package: pkg, Channel: StableChannel})
			}
		}
	}
	return directives
}

// FromOracle obtains the installed set from oracle and computes the directives.
// No directives are returned when the installed set cannot be obtained.
func FromOracle(closed []topic.Manifest, oracle Oracle) ([]Directive, error) {
	if oracle == nil {
		return nil, errors.New(messages.RevertOracleRequired)
	}
	installed, err := oracle.Installed()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInstalledUnavailable, err)
	}
	return Compute(closed, installed), nil
}

// Targets renders directives as apt install targets.
func Targets(directives []Directive) []string {
	targets := make([]string, 0, len(directives))
	for _, d := range directives {
		targets = append(targets, d.String())
	}
	return targets
}
