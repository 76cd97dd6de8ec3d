// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package isexe

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// EnvPathExt is the environment variable holding the Windows executable extensions.
const EnvPathExt = "PATHEXT"

// Identity is the user a Unix mode check is evaluated for.
type Identity struct {
	UID    int
	GID    int
	Groups []int
}

// Options configures an executable check.
type Options struct {
	// IgnoreErrors reports filesystem errors as "not executable" instead of returning them.
	IgnoreErrors bool

	// PathExt is the ';'-separated extension list used on Windows.
	// Empty means the PATHEXT environment variable.
	PathExt string

	// Identity overrides the calling process's identity on Unix-like systems.
	Identity *Identity
}

// Result is delivered by CheckAsync.
type Result struct {
	Executable bool
	Err        error
}

// Check reports whether path is an executable file.
func Check(path string, opts Options) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return handleError(err, opts)
	}
	return checkStat(info, path, opts), nil
}

// CheckAsync runs Check in its own goroutine. The returned channel receives exactly
// one Result and is then closed. If ctx is done first, the result carries ctx.Err().
func CheckAsync(ctx context.Context, path string, opts Options) <-chan Result {
	return runAsync(ctx, func() (bool, error) { return Check(path, opts) })
}

// runAsync runs check in its own goroutine and delivers its result, or ctx.Err()
// if ctx is done first.
func runAsync(ctx context.Context, check func() (bool, error)) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)

		done := make(chan Result, 1)
		go func() {
			ok, err := check()
			done <- Result{Executable: ok, Err: err}
		}()

		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- Result{Err: ctx.Err()}
		}
	}()
	return out
}

// handleError converts a stat error into the check result.
func handleError(err error, opts Options) (bool, error) {
	if opts.IgnoreErrors || errors.Is(err, fs.ErrPermission) {
		return false, nil
	}
	return false, err
}

// Checker adapts the package functions to the which.Checker interface.
type Checker struct{}

// Default is the Checker used when no other is configured.
var Default = Checker{}

// IsExe calls Check.
func (Checker) IsExe(path string, opts Options) (bool, error) {
	return Check(path, opts)
}

// IsExeAsync calls CheckAsync.
func (Checker) IsExeAsync(ctx context.Context, path string, opts Options) <-chan Result {
	return CheckAsync(ctx, path, opts)
}
