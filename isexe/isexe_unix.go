//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package isexe

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// checkStat evaluates the execute bits of a regular file for the configured identity.
func checkStat(info os.FileInfo, _ string, opts Options) bool {
	if !info.Mode().IsRegular() {
		return false
	}

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Mode().Perm()&(ownerExec|groupExec|otherExec) != 0
	}

	id := currentIdentity()
	if opts.Identity != nil {
		id = *opts.Identity
	}
	return modeAllows(uint32(info.Mode().Perm()), int(st.Uid), int(st.Gid), id)
}

func currentIdentity() Identity {
	groups, err := unix.Getgroups()
	if err != nil {
		groups = nil
	}
	return Identity{
		UID:    unix.Getuid(),
		GID:    unix.Getgid(),
		Groups: groups,
	}
}
