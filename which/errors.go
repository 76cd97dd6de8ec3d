// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package which

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// CodeNotFound is the machine-readable code carried by NotFoundError.
const CodeNotFound = "ENOENT"

// NotFoundError is returned when no executable candidate exists for a command.
// It wraps syscall.ENOENT, so errors.Is(err, fs.ErrNotExist) is true.
type NotFoundError struct {
	// Command is the command as passed by the caller.
	Command string

	// Op is the entry point that failed, such as "Lookup" or "LookupAsync".
	Op string

	cause error
}

// Error returns "not found: <command>".
func (e *NotFoundError) Error() string {
	return "not found: " + e.Command
}

// Unwrap returns the ENOENT cause.
func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// Code returns CodeNotFound.
func (e *NotFoundError) Code() string {
	return CodeNotFound
}

// StackTrace returns the stack recorded at the failing entry point.
func (e *NotFoundError) StackTrace() pkgerrors.StackTrace {
	var st interface{ StackTrace() pkgerrors.StackTrace }
	if errors.As(e.cause, &st) {
		return st.StackTrace()
	}
	return nil
}

// Format prints the stack trace for %+v.
func (e *NotFoundError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s (%s): %s%+v", e.Error(), e.Op, CodeNotFound, e.StackTrace())
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
