// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package isexe

import (
	"os"
	"strings"
)

// MatchPathExt reports whether path ends with one of the ';'-separated extensions
// in pathExt, ignoring case. An empty entry anywhere in the list matches every path.
// An empty pathExt falls back to the PATHEXT environment variable.
func MatchPathExt(path, pathExt string) bool {
	if pathExt == "" {
		pathExt = os.Getenv(EnvPathExt)
	}

	lowerPath := strings.ToLower(path)
	entries := strings.Split(pathExt, ";")
	for _, e := range entries {
		if e == "" {
			return true
		}
	}
	for _, e := range entries {
		if strings.HasSuffix(lowerPath, strings.ToLower(e)) {
			return true
		}
	}
	return false
}

// Unix permission bits for owner, group and other execute.
const (
	ownerExec = 0o100
	groupExec = 0o010
	otherExec = 0o001
)

// modeAllows reports whether an execute bit in perm applies to id for a file
// owned by fileUID:fileGID.
func modeAllows(perm uint32, fileUID, fileGID int, id Identity) bool {
	if perm&otherExec != 0 {
		return true
	}
	if perm&groupExec != 0 && inGroup(fileGID, id) {
		return true
	}
	if perm&ownerExec != 0 && fileUID == id.UID {
		return true
	}
	return perm&(ownerExec|groupExec) != 0 && id.UID == 0
}

func inGroup(gid int, id Identity) bool {
	if gid == id.GID {
		return true
	}
	for _, g := range id.Groups {
		if g == gid {
			return true
		}
	}
	return false
}
