// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil provides PATH helpers for locating developer tools.
//
// Tool lookups go through package which, so they follow shell resolution rules
// on every platform, including PATHEXT extensions on Windows.
//
// # Example: Finding a Tool
//
//	toolPath := pathutil.FindToolInPath("node")
//	if toolPath == "" {
//	    // Not on PATH, try common installation directories
//	    toolPath = pathutil.SearchToolInSystemPath("node")
//	}
//	if toolPath == "" {
//	    fmt.Println(pathutil.GetInstallSuggestion("node"))
//	}
//
// # Refreshing PATH
//
// On Windows, RefreshPATH rebuilds PATH from the Machine and User registry values
// via PowerShell (-NoProfile -NonInteractive), which picks up tools installed after
// the process started. On Unix it returns the current PATH unchanged, because a Go
// process cannot source shell profiles.
package pathutil
