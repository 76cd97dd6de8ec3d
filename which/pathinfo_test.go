// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePathInfo_Posix(t *testing.T) {
	env := map[string]string{"PATH": "/usr/local/bin:/usr/bin", "PATHEXT": ".EXE"}

	tests := []struct {
		name     string
		command  string
		opts     []Option
		wantDirs []string
	}{
		{"path from environment", "node", nil, []string{"/usr/local/bin", "/usr/bin"}},
		{"explicit path", "node", []Option{WithPath("/a:/b:/c")}, []string{"/a", "/b", "/c"}},
		{"explicit empty path", "node", []Option{WithPath("")}, []string{""}},
		{"custom delimiter", "node", []Option{WithPath("/a,/b"), WithDelimiter(",")}, []string{"/a", "/b"}},
		{"empty segments kept", "node", []Option{WithPath("/a::/b")}, []string{"/a", "", "/b"}},
		{"relative command bypasses path", "./node", []Option{WithPath("/a:/b")}, []string{""}},
		{"nested command bypasses path", "bin/node", nil, []string{""}},
		{"absolute command bypasses path", "/usr/bin/node", nil, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithPlatform(posixPlatform(env)), WithPathExt(".CMD")}, tt.opts...)
			info := ComputePathInfo(tt.command, opts...)
			assert.Equal(t, tt.wantDirs, info.SearchDirs)
			assert.Equal(t, []string{""}, info.Extensions, "no suffixes outside Windows")
			assert.Empty(t, info.ExtensionList)
		})
	}
}

func TestComputePathInfo_PathEnvUnset(t *testing.T) {
	info := ComputePathInfo("node", WithPlatform(posixPlatform(nil)))
	assert.Equal(t, []string{""}, info.SearchDirs)
}

func TestComputePathInfo_Windows(t *testing.T) {
	env := map[string]string{"PATH": `/w/bin;/w/tools`}
	defaultExts := []string{".EXE", ".exe", ".CMD", ".cmd", ".BAT", ".bat", ".COM", ".com"}

	tests := []struct {
		name     string
		command  string
		env      map[string]string
		opts     []Option
		wantDirs []string
		wantExts []string
		wantList string
	}{
		{
			name:     "cwd first then path",
			command:  "foo",
			env:      env,
			wantDirs: []string{"/cwd", "/w/bin", "/w/tools"},
			wantExts: defaultExts,
			wantList: ".EXE;.CMD;.BAT;.COM",
		},
		{
			name:     "dotted command tries literal name first",
			command:  "foo.exe",
			env:      env,
			wantDirs: []string{"/cwd", "/w/bin", "/w/tools"},
			wantExts: append([]string{""}, defaultExts...),
			wantList: ".EXE;.CMD;.BAT;.COM",
		},
		{
			name:     "PATHEXT from environment",
			command:  "foo",
			env:      map[string]string{"PATH": "/w/bin", "PATHEXT": ".PS1;.Exe"},
			wantDirs: []string{"/cwd", "/w/bin"},
			wantExts: []string{".PS1", ".ps1", ".Exe", ".exe"},
			wantList: ".PS1;.Exe",
		},
		{
			name:     "pathExt option beats environment",
			command:  "foo",
			env:      map[string]string{"PATH": "/w/bin", "PATHEXT": ".PS1"},
			opts:     []Option{WithPathExt(".CMD")},
			wantDirs: []string{"/cwd", "/w/bin"},
			wantExts: []string{".CMD", ".cmd"},
			wantList: ".CMD",
		},
		{
			name:     "empty pathExt option skips PATHEXT",
			command:  "foo",
			env:      map[string]string{"PATH": "/w/bin", "PATHEXT": ".PS1"},
			opts:     []Option{WithPathExt("")},
			wantDirs: []string{"/cwd", "/w/bin"},
			wantExts: defaultExts,
			wantList: ".EXE;.CMD;.BAT;.COM",
		},
		{
			name:     "custom delimiter joins default extensions",
			command:  "foo",
			env:      nil,
			opts:     []Option{WithPath("/a,/b"), WithDelimiter(",")},
			wantDirs: []string{"/cwd", "/a", "/b"},
			wantExts: defaultExts,
			wantList: ".EXE,.CMD,.BAT,.COM",
		},
		{
			name:     "leading empty extension is not duplicated",
			command:  "foo.bar",
			env:      map[string]string{"PATH": "/w/bin"},
			opts:     []Option{WithPathExt(";.EXE")},
			wantDirs: []string{"/cwd", "/w/bin"},
			wantExts: []string{"", "", ".EXE", ".exe"},
			wantList: ";.EXE",
		},
		{
			name:     "backslash bypasses path",
			command:  `bin\foo`,
			env:      env,
			wantDirs: []string{""},
			wantExts: defaultExts,
			wantList: ".EXE;.CMD;.BAT;.COM",
		},
		{
			name:     "forward slash bypasses path",
			command:  "bin/foo",
			env:      env,
			wantDirs: []string{""},
			wantExts: defaultExts,
			wantList: ".EXE;.CMD;.BAT;.COM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithPlatform(windowsPlatform(tt.env))}, tt.opts...)
			info := ComputePathInfo(tt.command, opts...)
			assert.Equal(t, tt.wantDirs, info.SearchDirs)
			assert.Equal(t, tt.wantExts, info.Extensions)
			assert.Equal(t, tt.wantList, info.ExtensionList)
		})
	}
}

func TestComputePathInfo_WindowsExtensionPairs(t *testing.T) {
	info := ComputePathInfo("tool", WithPlatform(windowsPlatform(nil)), WithPathExt(".A;.Bb;.CCC"))

	base := []string{".A", ".Bb", ".CCC"}
	if assert.Len(t, info.Extensions, 2*len(base)) {
		for i, e := range base {
			assert.Equal(t, e, info.Extensions[2*i])
			assert.Equal(t, strings.ToLower(e), info.Extensions[2*i+1])
		}
	}
}

func TestComputePathInfo_WindowsGetwdFailure(t *testing.T) {
	p := windowsPlatform(map[string]string{"PATH": "/w/bin"})
	p.Getwd = func() (string, error) { return "", errors.New("removed") }

	info := ComputePathInfo("foo", WithPlatform(p))
	assert.Equal(t, []string{".", "/w/bin"}, info.SearchDirs)
}

func TestCandidatePrefix(t *testing.T) {
	posix := posixPlatform(nil)
	win := windowsPlatform(nil)

	tests := []struct {
		name    string
		raw     string
		command string
		p       Platform
		want    string
	}{
		{"plain directory", "/usr/bin", "node", posix, "/usr/bin/node"},
		{"quoted directory", `"/opt/my tools"`, "node", posix, "/opt/my tools/node"},
		{"single quote char is not stripped", `"`, "node", posix, `"/node`},
		{"empty directory", "", "node", posix, "node"},
		{"relative command keeps dot prefix", "", "./node", posix, "./node"},
		{"relative nested command", "", "./bin/node", posix, "./bin/node"},
		{"parent relative command", "", "../node", posix, "../node"},
		{"windows quoted directory", `"/Program Files/tool"`, "foo", win, "/Program Files/tool/foo"},
		{"non-empty directory ignores dot prefix", "/usr", "./node", posix, "/usr/node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidatePrefix(tt.raw, tt.command, tt.p))
		})
	}
}
