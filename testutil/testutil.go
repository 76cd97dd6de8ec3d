// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ExecutablePermission is the mode WriteExecutable gives its files (rwxr-xr-x).
const ExecutablePermission = 0755

// WriteExecutable creates an executable shell script named name in dir and
// returns its path.
func WriteExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, ExecutablePermission)
}

// WriteFile creates a small script named name in dir with the given permissions
// and returns its path. Parent directories are created as needed.
func WriteFile(t *testing.T, dir, name string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	// WriteFile honors the umask, so set the final mode explicitly.
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("Failed to chmod %s: %v", name, err)
	}
	return path
}

// PathList joins dirs with the platform list separator, as in PATH.
func PathList(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

// CaptureOutput captures stdout during function execution.
// The original stdout is always restored, even if the function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    return cmd.Execute()
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr captures stderr during function execution.
func CaptureStderr(t *testing.T, fn func() error) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func() error) string {
	t.Helper()

	orig := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	// Buffered so the reader never blocks after the test returns.
	outCh := make(chan string, 1)
	go func() {
		var sb strings.Builder
		_, _ = io.Copy(&sb, r)
		outCh <- sb.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	*target = orig
	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}
	return output
}
