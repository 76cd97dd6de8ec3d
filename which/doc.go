// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package which resolves command names to executable paths the way a shell does.
//
// Given a command name, the package searches the directories of a search path
// (PATH by default) and returns the first, or every, executable candidate. On
// Windows the current directory is searched first and each directory is tried
// with every extension in PATHEXT, in both its original and lowercase spelling.
// Commands that contain a path separator are never searched for; they are checked
// as given.
//
// # Result Shapes
//
// Lookup honors two flags, giving four combinations:
//
//   - default: Result with one path, or *NotFoundError
//   - WithAll(): Result with every match in search order, or *NotFoundError
//   - WithNoThrow(): Result with one path, or an empty Result and nil error
//   - WithAll(), WithNoThrow(): every match, or an empty Result and nil error
//
// A found Result never carries an empty path list. Which and WhichAll are
// shorthands that return plain strings.
//
// # Blocking and Asynchronous Forms
//
// Lookup probes candidates on the calling goroutine. LookupAsync probes each
// candidate in its own goroutine but awaits them one at a time, in order, so both
// forms return identical results. Cancelling the context passed to LookupAsync
// abandons the search at the next probe.
//
// # Example Usage
//
//	node, err := which.Which("node")
//	if which.IsNotFound(err) {
//	    fmt.Println("node is not installed")
//	}
//
//	all, err := which.WhichAll("python", which.WithPath("/opt/py/bin:/usr/bin"))
//
//	outcome := <-which.LookupAsync(ctx, "git", which.WithNoThrow())
//	if outcome.Err == nil && outcome.Found() {
//	    fmt.Println(outcome.First())
//	}
package which
