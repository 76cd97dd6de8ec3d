// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package isexe reports whether a path names an executable file.
//
// On Unix-like systems a file is executable when it is a regular file and one of
// its execute bits applies to the calling identity (owner, group or other, with
// root matching any execute bit). On Windows a file is executable when it is a
// regular file whose name ends with one of the extensions listed in PATHEXT.
//
// Both a blocking form (Check) and a channel-based form (CheckAsync) are provided.
// Filesystem errors are returned to the caller unless IgnoreErrors is set, in which
// case they are reported as "not executable". Permission errors are always
// reported as "not executable".
//
// # Example Usage
//
//	ok, err := isexe.Check("/usr/local/bin/node", isexe.Options{})
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    fmt.Println("node is executable")
//	}
package isexe
