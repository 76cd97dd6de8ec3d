// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"context"
	"errors"
	"path"
	"sync"

	"github.com/jongio/azd-which/isexe"
)

// fakeChecker reports the paths in executables as executable and records every probe.
type fakeChecker struct {
	mu          sync.Mutex
	executables map[string]bool
	failing     map[string]bool
	probed      []string
	options     []isexe.Options
}

func newFakeChecker(executables ...string) *fakeChecker {
	f := &fakeChecker{executables: map[string]bool{}, failing: map[string]bool{}}
	for _, e := range executables {
		f.executables[e] = true
	}
	return f
}

func (f *fakeChecker) IsExe(p string, opts isexe.Options) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probed = append(f.probed, p)
	f.options = append(f.options, opts)
	if f.failing[p] {
		return false, errors.New("permission denied")
	}
	return f.executables[p], nil
}

func (f *fakeChecker) IsExeAsync(_ context.Context, p string, opts isexe.Options) <-chan isexe.Result {
	out := make(chan isexe.Result, 1)
	go func() {
		defer close(out)
		ok, err := f.IsExe(p, opts)
		out <- isexe.Result{Executable: ok, Err: err}
	}()
	return out
}

func (f *fakeChecker) probes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.probed...)
}

// countingObserver tallies observer callbacks.
type countingObserver struct {
	mu      sync.Mutex
	probes  int
	hits    int
	lookups map[string]int
}

func (c *countingObserver) ProbeCompleted(_ string, executable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes++
	if executable {
		c.hits++
	}
}

func (c *countingObserver) LookupCompleted(command string, matches int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lookups == nil {
		c.lookups = map[string]int{}
	}
	c.lookups[command] = matches
}

func envFunc(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

// posixPlatform is a Unix-like platform with a fixed environment.
func posixPlatform(env map[string]string) Platform {
	return Platform{
		Separator:     '/',
		ListSeparator: ":",
		Getenv:        envFunc(env),
		Getwd:         func() (string, error) { return "/work", nil },
		Join:          path.Join,
	}
}

// windowsPlatform applies Windows lookup rules with forward-slash joins so
// expected paths read the same on every host.
func windowsPlatform(env map[string]string) Platform {
	return Platform{
		Windows:       true,
		Separator:     '\\',
		ListSeparator: ";",
		Getenv:        envFunc(env),
		Getwd:         func() (string, error) { return "/cwd", nil },
		Join:          path.Join,
	}
}
