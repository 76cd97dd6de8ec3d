//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package isexe

import "os"

// checkStat reports whether a regular file carries an extension from PathExt.
func checkStat(info os.FileInfo, path string, opts Options) bool {
	return info.Mode().IsRegular() && MatchPathExt(path, opts.PathExt)
}
