// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides test helpers for building fake search paths and
// capturing command output.
//
// # Example
//
//	bin := t.TempDir()
//	node := testutil.WriteExecutable(t, bin, "node")
//	got, err := which.Which("node", which.WithPath(testutil.PathList(bin)))
package testutil
