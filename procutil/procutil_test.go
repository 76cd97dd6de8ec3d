// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/azd-which/isexe"
	"github.com/jongio/azd-which/testutil"
	"github.com/jongio/azd-which/which"
)

func TestIsProcessRunning(t *testing.T) {
	tests := []struct {
		name string
		pid  int
		want bool
	}{
		{"current process", os.Getpid(), true},
		{"zero pid", 0, false},
		{"negative pid", -1, false},
		{"unlikely pid", 99999999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsProcessRunning(tt.pid))
		})
	}
}

func TestEnvironment_InvalidPID(t *testing.T) {
	_, err := Environment(context.Background(), 0)
	assert.Error(t, err)
}

func TestEnvironment_CurrentProcess(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("process environment snapshots are only reliable on Linux")
	}

	env, err := Environment(context.Background(), os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, int32(os.Getpid()), env.PID)
	assert.NotEmpty(t, env.Vars)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, env.Cwd)
}

func TestProcessEnv_Getenv(t *testing.T) {
	env := &ProcessEnv{Vars: []string{"PATH=/opt/bin:/usr/bin", "EMPTY=", "MALFORMED", "EQ=a=b"}}

	assert.Equal(t, "/opt/bin:/usr/bin", env.Getenv("PATH"))
	assert.Equal(t, "", env.Getenv("EMPTY"))
	assert.Equal(t, "", env.Getenv("MALFORMED"))
	assert.Equal(t, "a=b", env.Getenv("EQ"))
	assert.Equal(t, "", env.Getenv("MISSING"))
}

func TestProcessEnv_Getwd(t *testing.T) {
	_, err := (&ProcessEnv{PID: 7}).Getwd()
	assert.Error(t, err)

	wd, err := (&ProcessEnv{Cwd: "/srv"}).Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/srv", wd)
}

func TestProcessEnv_OptionsResolveWithProcessPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("script fixtures are not PATHEXT executables")
	}
	dir := t.TempDir()
	want := testutil.WriteExecutable(t, dir, "only-in-process-path")
	t.Setenv("PATH", t.TempDir())

	env := &ProcessEnv{Vars: []string{"PATH=" + dir}}
	got, err := which.Which("only-in-process-path", env.Options()...)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = which.Which("only-in-process-path")
	assert.True(t, which.IsNotFound(err), "host PATH must not be used")
}

func TestProcessEnv_OptionsResolveRelativeToProcessCwd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("script fixtures are not PATHEXT executables")
	}
	procDir := t.TempDir()
	testutil.WriteExecutable(t, procDir, "local-tool")
	t.Chdir(t.TempDir())

	env := &ProcessEnv{Vars: []string{"PATH=."}, Cwd: procDir}

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"relative PATH entry", "local-tool", "local-tool"},
		{"dot-slash command", "./local-tool", "./local-tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := which.Which(tt.command, env.Options()...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, err = which.Which(tt.command, (&ProcessEnv{Vars: env.Vars}).Options()...)
			assert.True(t, which.IsNotFound(err), "without a cwd, relative paths use the caller's directory")
		})
	}
}

func TestCwdChecker_AbsolutePathUnchanged(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("script fixtures are not PATHEXT executables")
	}
	exe := testutil.WriteExecutable(t, t.TempDir(), "tool")
	c := cwdChecker{cwd: "/nonexistent", next: isexe.Default}

	ok, err := c.IsExe(exe, isexe.Options{})
	require.NoError(t, err)
	assert.True(t, ok)

	res := <-c.IsExeAsync(context.Background(), "tool", isexe.Options{IgnoreErrors: true})
	require.NoError(t, res.Err)
	assert.False(t, res.Executable)
}
