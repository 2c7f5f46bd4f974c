// Package dpkg reads the dpkg status database to find installed packages.
package dpkg

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/topic-manager/internal/messages"
	"github.com/conn-castle/topic-manager/internal/revert"
)

// DefaultStatusPath is where dpkg keeps its installed-state database.
const DefaultStatusPath = "/var/lib/dpkg/status"

// Packages is a set of installed package names.
type Packages map[string]struct{}

// Has reports whether name is installed.
func (p Packages) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Parse reads dpkg status content and returns the packages whose Status marks them installed.
func Parse(content string) (Packages, error) {
	installed := make(Packages)
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var name, status string
	field := ""
	flush := func() {
		if name != "" && isInstalled(status) {
			installed[name] = struct{}{}
		}
		name, status, field = "", "", ""
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if field == "" {
				return nil, fmt.Errorf(messages.DpkgLineErrorFmt, lineNo, errors.New(messages.DpkgOrphanContinuation))
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf(messages.DpkgLineErrorFmt, lineNo, fmt.Errorf(messages.DpkgMalformedFieldFmt, line))
		}
		field = key
		switch key {
		case "Package":
			name = strings.TrimSpace(value)
		case "Status":
			status = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.DpkgScanFailedFmt, err)
	}
	flush()
	return installed, nil
}

// isInstalled reports whether a Status value ("want flag state") has state "installed".
func isInstalled(status string) bool {
	fields := strings.Fields(status)
	return len(fields) == 3 && fields[2] == "installed"
}

// StatusOracle loads the installed package set from a dpkg status file.
type StatusOracle struct {
	Path     string
	ReadFile func(name string) ([]byte, error)
}

// NewStatusOracle returns an oracle reading path from the OS filesystem. An empty path
// means DefaultStatusPath.
func NewStatusOracle(path string) *StatusOracle {
	if path == "" {
		path = DefaultStatusPath
	}
	return &StatusOracle{Path: path, ReadFile: os.ReadFile}
}

// Installed reads and parses the status file.
func (o *StatusOracle) Installed() (revert.Installed, error) {
	readFile := o.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(o.Path)
	if err != nil {
		return nil, fmt.Errorf(messages.DpkgReadFailedFmt, o.Path, err)
	}
	pkgs, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.DpkgParseFailedFmt, o.Path, err)
	}
	return pkgs, nil
}
