// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package procutil inspects running processes so commands can be resolved the
// way another process would resolve them.
//
// It uses github.com/shirou/gopsutil/v4/process, which reads /proc on Linux,
// sysctl on macOS and BSD, and the native process APIs on Windows.
//
// # Example Usage
//
//	env, err := procutil.Environment(ctx, pid)
//	if err != nil {
//	    return err
//	}
//	// Resolve "node" with the PATH, PATHEXT and working directory of pid.
//	path, err := which.Which("node", env.Options()...)
//
// Reading another user's process environment usually requires elevated
// privileges; Environment returns the underlying error in that case.
package procutil
