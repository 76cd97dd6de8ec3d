// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"strings"

	"github.com/jongio/azd-which/isexe"
)

// DefaultExtensions are tried on Windows when neither PathExt nor PATHEXT is set.
var DefaultExtensions = []string{".EXE", ".CMD", ".BAT", ".COM"}

// PathInfo is the search plan for one command.
type PathInfo struct {
	// SearchDirs are the directories to try, in order. A single empty entry means
	// the command is used as given.
	SearchDirs []string

	// Extensions are the suffixes appended to each candidate, in order.
	// An empty entry means no suffix.
	Extensions []string

	// ExtensionList is the unexpanded extension list handed to the Checker.
	// It is empty outside Windows.
	ExtensionList string
}

// ComputePathInfo returns the directories and extensions a lookup of command would try.
func ComputePathInfo(command string, opts ...Option) PathInfo {
	return computePathInfo(command, newOptions(opts))
}

func computePathInfo(command string, o Options) PathInfo {
	p := o.Platform
	delimiter := o.Delimiter
	if delimiter == "" {
		delimiter = p.ListSeparator
	}

	var dirs []string
	if p.hasSeparator(command) {
		dirs = []string{""}
	} else {
		if p.Windows {
			dirs = append(dirs, workingDir(p))
		}
		path := o.Path
		if !o.pathSet {
			path = p.Getenv(EnvPath)
		}
		dirs = append(dirs, strings.Split(path, delimiter)...)
	}

	if !p.Windows {
		return PathInfo{SearchDirs: dirs, Extensions: []string{""}}
	}

	extList := o.PathExt
	if !o.pathExtSet {
		extList = p.Getenv(isexe.EnvPathExt)
	}
	if extList == "" {
		extList = strings.Join(DefaultExtensions, delimiter)
	}

	base := strings.Split(extList, delimiter)
	exts := make([]string, 0, 2*len(base)+1)
	for _, e := range base {
		exts = append(exts, e, strings.ToLower(e))
	}
	if strings.Contains(command, ".") && exts[0] != "" {
		exts = append([]string{""}, exts...)
	}

	return PathInfo{SearchDirs: dirs, Extensions: exts, ExtensionList: extList}
}

// workingDir returns the current directory, or "." when it cannot be determined.
func workingDir(p Platform) string {
	wd, err := p.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// candidatePrefix returns the candidate path for command in the search path entry raw,
// before any extension is appended.
func candidatePrefix(raw, command string, p Platform) string {
	dir := raw
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		dir = raw[1 : len(raw)-1]
	}

	// Join drops a leading "./"; keep it so relative commands stay relative.
	prefix := ""
	if dir == "" && p.hasRelativePrefix(command) {
		prefix = command[:2]
	}
	return prefix + p.Join(dir, command)
}
