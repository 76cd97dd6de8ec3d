// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package mcptool exposes command lookup as a Model Context Protocol tool.
//
// The tool is named "which" and accepts:
//
//	command  (string, required)  command to resolve
//	all      (boolean)           return every match instead of the first
//	path     (string)            search path replacing PATH
//	pathExt  (string)            extension list replacing PATHEXT
//
// Results are JSON objects of the form {"command": ..., "paths": [...], "found": bool}.
// A command that cannot be found is a successful call with found=false.
package mcptool
