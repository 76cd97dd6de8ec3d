// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvPath is the environment variable holding the search path.
const EnvPath = "PATH"

// Platform describes the operating system conventions a lookup follows.
// Tests and callers resolving on behalf of another process can supply their own.
type Platform struct {
	// Windows selects Windows lookup rules: current directory first and PATHEXT extensions.
	Windows bool

	// Separator is the native path separator. '/' is always treated as a separator too.
	Separator byte

	// ListSeparator is the default delimiter for the path and extension lists.
	ListSeparator string

	// Getenv reads an environment variable.
	Getenv func(string) string

	// Getwd returns the current working directory.
	Getwd func() (string, error)

	// Join joins path elements.
	Join func(elem ...string) string
}

// HostPlatform returns the conventions of the running operating system.
func HostPlatform() Platform {
	return Platform{
		Windows:       runtime.GOOS == "windows",
		Separator:     os.PathSeparator,
		ListSeparator: string(os.PathListSeparator),
		Getenv:        os.Getenv,
		Getwd:         os.Getwd,
		Join:          filepath.Join,
	}
}

// withDefaults fills unset fields from the host platform.
func (p Platform) withDefaults() Platform {
	host := HostPlatform()
	if p.Separator == 0 {
		p.Separator = host.Separator
	}
	if p.ListSeparator == "" {
		p.ListSeparator = host.ListSeparator
	}
	if p.Getenv == nil {
		p.Getenv = host.Getenv
	}
	if p.Getwd == nil {
		p.Getwd = host.Getwd
	}
	if p.Join == nil {
		p.Join = host.Join
	}
	return p
}

// isSeparator reports whether c separates path elements on this platform.
func (p Platform) isSeparator(c byte) bool {
	return c == '/' || c == p.Separator
}

// hasSeparator reports whether s contains a path separator.
func (p Platform) hasSeparator(s string) bool {
	for i := 0; i < len(s); i++ {
		if p.isSeparator(s[i]) {
			return true
		}
	}
	return false
}

// hasRelativePrefix reports whether s starts with "./" (or ".\" on Windows).
func (p Platform) hasRelativePrefix(s string) bool {
	return len(s) >= 2 && s[0] == '.' && p.isSeparator(s[1])
}
