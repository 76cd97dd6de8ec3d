// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/jongio/azd-which/isexe"
	"github.com/jongio/azd-which/which"
)

// IsProcessRunning reports whether a process with the given PID exists.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}

// ProcessEnv is the lookup-relevant environment of a process.
type ProcessEnv struct {
	PID int32

	// Vars holds the process environment as KEY=VALUE entries.
	Vars []string

	// Cwd is the working directory, or "" if it could not be read.
	Cwd string
}

// Environment reads the environment and working directory of a running process.
// A missing working directory is not an error.
func Environment(ctx context.Context, pid int) (*ProcessEnv, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid %d", pid)
	}

	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return nil, fmt.Errorf("failed to open process %d: %w", pid, err)
	}

	vars, err := p.EnvironWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment of process %d: %w", pid, err)
	}

	cwd, err := p.CwdWithContext(ctx)
	if err != nil {
		cwd = ""
	}

	return &ProcessEnv{PID: p.Pid, Vars: vars, Cwd: cwd}, nil
}

// Getenv returns the value of key in the process environment.
// Keys are case-insensitive on Windows.
func (e *ProcessEnv) Getenv(key string) string {
	for _, kv := range e.Vars {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if k == key || (runtime.GOOS == "windows" && strings.EqualFold(k, key)) {
			return v
		}
	}
	return ""
}

// Getwd returns the process working directory.
func (e *ProcessEnv) Getwd() (string, error) {
	if e.Cwd == "" {
		return "", fmt.Errorf("working directory of process %d is unknown", e.PID)
	}
	return e.Cwd, nil
}

// Options returns which options that resolve commands with this environment.
// Relative candidates, such as "./tool" or entries of a relative PATH, are
// checked against the process working directory when it is known.
func (e *ProcessEnv) Options() []which.Option {
	p := which.HostPlatform()
	p.Getenv = e.Getenv
	p.Getwd = e.Getwd
	opts := []which.Option{which.WithPlatform(p)}
	if e.Cwd != "" {
		opts = append(opts, which.WithChecker(cwdChecker{cwd: e.Cwd, next: isexe.Default}))
	}
	return opts
}

// cwdChecker checks relative candidates as if cwd were the current directory.
// Reported paths keep the form the process would see.
type cwdChecker struct {
	cwd  string
	next which.Checker
}

func (c cwdChecker) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.cwd, path)
}

func (c cwdChecker) IsExe(path string, opts isexe.Options) (bool, error) {
	return c.next.IsExe(c.resolve(path), opts)
}

func (c cwdChecker) IsExeAsync(ctx context.Context, path string, opts isexe.Options) <-chan isexe.Result {
	return c.next.IsExeAsync(ctx, c.resolve(path), opts)
}
