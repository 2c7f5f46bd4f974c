// Package testutil holds helpers shared by tests that run external commands.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	writeScript(t, filepath.Join(dir, name), fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteRecordingStub writes an executable shell stub that appends its arguments, one
// invocation per line, to the returned log file and exits successfully.
func WriteRecordingStub(t *testing.T, dir string, name string) string {
	t.Helper()
	logPath := filepath.Join(dir, name+".calls")
	writeScript(t, filepath.Join(dir, name), fmt.Sprintf("#!/bin/sh\necho \"$*\" >> '%s'\n", logPath))
	return logPath
}

// ReadCalls returns the invocations recorded by a stub from WriteRecordingStub.
func ReadCalls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub calls: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// PrependPath puts dir first on PATH for the rest of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeScript(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
