// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"context"
	"errors"
	"syscall"

	pkgerrors "github.com/pkg/errors"

	"github.com/jongio/azd-which/isexe"
	"github.com/jongio/azd-which/logutil"
)

// Result holds the paths found by a lookup. Paths is nil when nothing was found
// and the lookup was configured with WithNoThrow.
type Result struct {
	Paths []string `json:"paths"`
}

// Found reports whether at least one path was found.
func (r Result) Found() bool {
	return len(r.Paths) > 0
}

// First returns the first path found, or "" if there is none.
func (r Result) First() string {
	if len(r.Paths) == 0 {
		return ""
	}
	return r.Paths[0]
}

// Outcome is delivered by LookupAsync.
type Outcome struct {
	Result
	Err error
}

// probeFunc checks one candidate. A non-nil error aborts the search.
type probeFunc func(candidate string, check isexe.Options) (bool, error)

// Lookup searches for command and blocks until the search is complete.
func Lookup(command string, opts ...Option) (Result, error) {
	o := newOptions(opts)
	res, found, err := lookup(command, o, blockingProbe(o), "Lookup")
	if err != nil {
		return Result{}, err
	}
	if !found && !o.NoThrow {
		return Result{}, &NotFoundError{Command: command, Op: "Lookup", cause: pkgerrors.WithStack(syscall.ENOENT)}
	}
	return res, nil
}

// LookupAsync searches for command in a new goroutine. Each candidate is probed
// asynchronously but strictly in order. The channel receives one Outcome and is
// then closed. Cancelling ctx stops the search at the next probe with ctx.Err().
func LookupAsync(ctx context.Context, command string, opts ...Option) <-chan Outcome {
	o := newOptions(opts)
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)

		res, found, err := lookup(command, o, asyncProbe(ctx, o), "LookupAsync")
		if err != nil {
			out <- Outcome{Err: err}
			return
		}
		if !found && !o.NoThrow {
			out <- Outcome{Err: &NotFoundError{Command: command, Op: "LookupAsync", cause: pkgerrors.WithStack(syscall.ENOENT)}}
			return
		}
		out <- Outcome{Result: res}
	}()
	return out
}

// Which returns the first executable path for command.
// With WithNoThrow, a missing command yields "" and a nil error.
func Which(command string, opts ...Option) (string, error) {
	o := newOptions(opts)
	o.All = false
	res, found, err := lookup(command, o, blockingProbe(o), "Which")
	if err != nil {
		return "", err
	}
	if !found && !o.NoThrow {
		return "", &NotFoundError{Command: command, Op: "Which", cause: pkgerrors.WithStack(syscall.ENOENT)}
	}
	return res.First(), nil
}

// WhichAll returns every executable path for command in search order.
// With WithNoThrow, a missing command yields a nil slice and a nil error.
func WhichAll(command string, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	o.All = true
	res, found, err := lookup(command, o, blockingProbe(o), "WhichAll")
	if err != nil {
		return nil, err
	}
	if !found && !o.NoThrow {
		return nil, &NotFoundError{Command: command, Op: "WhichAll", cause: pkgerrors.WithStack(syscall.ENOENT)}
	}
	return res.Paths, nil
}

// lookup plans and runs the search for command.
func lookup(command string, o Options, probe probeFunc, op string) (Result, bool, error) {
	log := logutil.NewLogger("which").WithOperation(op)
	info := computePathInfo(command, o)
	log.Debug("searching", "command", command, "dirs", len(info.SearchDirs), "extensions", len(info.Extensions), "all", o.All)

	paths, err := search(command, info, o, func(candidate string, check isexe.Options) (bool, error) {
		ok, err := probe(candidate, check)
		if err != nil {
			return false, err
		}
		log.Debug("probed", "candidate", candidate, "executable", ok)
		o.Observer.ProbeCompleted(candidate, ok)
		return ok, nil
	})
	if err != nil {
		return Result{}, false, err
	}

	o.Observer.LookupCompleted(command, len(paths))
	if len(paths) == 0 {
		return Result{}, false, nil
	}
	return Result{Paths: paths}, true, nil
}

// search walks directories, then extensions, in order. In first-match mode it
// stops at the first executable candidate.
func search(command string, info PathInfo, o Options, probe probeFunc) ([]string, error) {
	check := checkOptions(info)
	var found []string
	for _, dir := range info.SearchDirs {
		prefix := candidatePrefix(dir, command, o.Platform)
		for _, ext := range info.Extensions {
			candidate := prefix + ext
			ok, err := probe(candidate, check)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if !o.All {
				return []string{candidate}, nil
			}
			found = append(found, candidate)
		}
	}
	return found, nil
}

// checkOptions are the isexe options every probe uses. Filesystem errors are
// always swallowed by the Checker.
func checkOptions(info PathInfo) isexe.Options {
	return isexe.Options{PathExt: info.ExtensionList, IgnoreErrors: true}
}

// blockingProbe checks candidates on the calling goroutine.
// Checker errors count as "not executable".
func blockingProbe(o Options) probeFunc {
	return func(candidate string, check isexe.Options) (bool, error) {
		ok, err := o.Checker.IsExe(candidate, check)
		if err != nil {
			return false, nil
		}
		return ok, nil
	}
}

// asyncProbe awaits one asynchronous check at a time. Only cancellation of ctx
// aborts the search; other Checker errors count as "not executable".
func asyncProbe(ctx context.Context, o Options) probeFunc {
	return func(candidate string, check isexe.Options) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		select {
		case res, ok := <-o.Checker.IsExeAsync(ctx, candidate, check):
			if !ok {
				return false, nil
			}
			if res.Err != nil {
				if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
					return false, res.Err
				}
				return false, nil
			}
			return res.Executable, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
