// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"context"

	"github.com/jongio/azd-which/isexe"
)

// Checker decides whether a candidate path is executable.
// isexe.Default is used when none is configured.
type Checker interface {
	IsExe(path string, opts isexe.Options) (bool, error)
	IsExeAsync(ctx context.Context, path string, opts isexe.Options) <-chan isexe.Result
}

// Observer receives lookup events. Implementations must be safe for concurrent use.
type Observer interface {
	// ProbeCompleted is called after each candidate is checked.
	ProbeCompleted(candidate string, executable bool)

	// LookupCompleted is called once per finished lookup with the number of matches.
	LookupCompleted(command string, matches int)
}

// Options holds the settings of a single lookup.
type Options struct {
	// All returns every match instead of the first.
	All bool

	// Path is the delimiter-separated list of directories to search.
	// It is only used when set through WithPath; otherwise PATH is read.
	Path string

	// PathExt is the delimiter-separated extension list used on Windows.
	// It is only used when set through WithPathExt; otherwise PATHEXT is read.
	// An empty list, set or read, means DefaultExtensions.
	PathExt string

	// Delimiter splits Path and PathExt. Empty means the platform list separator.
	Delimiter string

	// NoThrow returns an empty Result instead of a *NotFoundError.
	NoThrow bool

	Platform Platform
	Checker  Checker
	Observer Observer

	pathSet    bool
	pathExtSet bool
}

// Option configures a lookup.
type Option func(*Options)

// WithAll returns every match in search order.
func WithAll() Option {
	return func(o *Options) { o.All = true }
}

// WithPath searches path instead of the PATH environment variable.
// An empty path searches only the command itself.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
		o.pathSet = true
	}
}

// WithPathExt sets the Windows extension list instead of PATHEXT.
// An empty value selects DefaultExtensions.
func WithPathExt(pathExt string) Option {
	return func(o *Options) {
		o.PathExt = pathExt
		o.pathExtSet = true
	}
}

// WithDelimiter sets the list delimiter for the path and extension lists.
func WithDelimiter(delimiter string) Option {
	return func(o *Options) { o.Delimiter = delimiter }
}

// WithNoThrow reports a missing command as an empty Result instead of an error.
func WithNoThrow() Option {
	return func(o *Options) { o.NoThrow = true }
}

// WithPlatform overrides the host platform conventions.
func WithPlatform(p Platform) Option {
	return func(o *Options) { o.Platform = p }
}

// WithChecker overrides the executable check.
func WithChecker(c Checker) Option {
	return func(o *Options) { o.Checker = c }
}

// WithObserver registers an Observer for the lookup.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) Options {
	o := Options{Platform: HostPlatform()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.Platform = o.Platform.withDefaults()
	if o.Checker == nil {
		o.Checker = isexe.Default
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	return o
}

type nopObserver struct{}

func (nopObserver) ProbeCompleted(string, bool) {}
func (nopObserver) LookupCompleted(string, int) {}
