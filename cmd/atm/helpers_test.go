package main

import "github.com/conn-castle/topic-manager/internal/topic"

func newTestManifest(name string, enabled bool, closed bool) topic.Manifest {
	return topic.Manifest{Name: name, Packages: []string{name}, Enabled: enabled, Closed: closed}
}
