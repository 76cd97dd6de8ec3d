// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads lookup defaults from a YAML file.
//
// The default location is .azd/which.yaml in the project directory:
//
//	# Directories searched after PATH.
//	extraDirs:
//	  - ./node_modules/.bin
//	  - ~/tools/bin
//	# Windows only; empty keeps PATHEXT.
//	pathExt: .EXE;.CMD;.PS1
//	all: false
//
// A missing file is not an error; Load returns an empty Config.
package config
