// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile writes content to directory/name with mode 0644 and
// returns the full path.
func WriteFile(t *testing.T, directory, name, content string) string {
	t.Helper()
	return writeFile(t, directory, name, content, 0644)
}

// WriteExecutable writes content to directory/name with mode 0755 and
// returns the full path. Tests use it for shell scripts that stand in
// for an emulator binary.
func WriteExecutable(t *testing.T, directory, name, content string) string {
	t.Helper()
	return writeFile(t, directory, name, content, 0755)
}

func writeFile(t *testing.T, directory, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// RequireFile polls until path exists and returns its contents, or
// fails the test after timeout. Use it to observe side effects of a
// process the test did not start directly and therefore cannot Wait on.
func RequireFile(t *testing.T, path string, timeout time.Duration) []byte {
	t.Helper()
	found := make(chan []byte, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		ticker := time.NewTicker(20 * time.Millisecond) //nolint:realclock polling a file written by another process
		defer ticker.Stop()
		for {
			if data, err := os.ReadFile(path); err == nil {
				found <- data
				return
			}
			select {
			case <-ticker.C:
			case <-stop:
				return
			}
		}
	}()

	return RequireReceive(t, found, timeout, "waiting for %s", path)
}
