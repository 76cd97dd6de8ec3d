// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cliout formats command output as human-readable text or JSON.
//
// Human-readable output uses ANSI colors and Unicode symbols. Colors are only
// written to terminals and are disabled by NoColor or the NO_COLOR environment
// variable. Legacy Windows consoles get ASCII symbols instead of Unicode.
//
//	if err := cliout.SetFormat(flagOutput); err != nil {
//	    return err
//	}
//	return cliout.Print(result, func() {
//	    for _, p := range result.Paths {
//	        cliout.Plain("%s", p)
//	    }
//	})
//
// Errors and warnings are written to stderr so that stdout stays usable in pipelines.
package cliout
