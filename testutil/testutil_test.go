// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("line 1")
			fmt.Print("line 2")
			return nil
		})
		if output != "line 1\nline 2" {
			t.Errorf("unexpected output: %q", output)
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		orig := os.Stdout
		output := CaptureOutput(t, func() error {
			fmt.Println("before error")
			return errors.New("boom")
		})
		if !strings.Contains(output, "before error") {
			t.Errorf("expected output before error, got %q", output)
		}
		if os.Stdout != orig {
			t.Error("stdout was not restored")
		}
	})

	t.Run("captures large output", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			for i := 0; i < 2000; i++ {
				fmt.Println("/usr/local/bin/some-long-tool-name")
			}
			return nil
		})
		if got := strings.Count(output, "\n"); got != 2000 {
			t.Errorf("expected 2000 lines, got %d", got)
		}
	})
}

func TestCaptureStderr(t *testing.T) {
	output := CaptureStderr(t, func() error {
		fmt.Fprintln(os.Stderr, "not found: node")
		return nil
	})
	if output != "not found: node\n" {
		t.Errorf("unexpected stderr: %q", output)
	}
}

func TestWriteExecutable(t *testing.T) {
	dir := t.TempDir()
	path := WriteExecutable(t, filepath.Join(dir, "nested"), "tool")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != ExecutablePermission {
		t.Errorf("expected mode %o, got %o", ExecutablePermission, info.Mode().Perm())
	}
}

func TestWriteFile_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix permissions only")
	}
	path := WriteFile(t, t.TempDir(), "plain", 0644)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected mode 644, got %o", info.Mode().Perm())
	}
}

func TestPathList(t *testing.T) {
	sep := string(os.PathListSeparator)
	if got := PathList("a", "b", "c"); got != "a"+sep+"b"+sep+"c" {
		t.Errorf("PathList() = %q", got)
	}
	if got := PathList(); got != "" {
		t.Errorf("PathList() with no dirs = %q, want empty", got)
	}
}
