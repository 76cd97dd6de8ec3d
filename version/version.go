// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package version holds build version information and the version command.
package version

import (
	"fmt"
	"runtime"
)

// Version, BuildDate and GitCommit are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/jongio/azd-which/version.Version=1.2.3"
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a binary.
type Info struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	GitCommit   string `json:"gitCommit"`
	ExtensionID string `json:"extensionId"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
}

// New creates an Info from the build variables.
func New(extensionID, name string) *Info {
	return &Info{
		Version:     Version,
		BuildDate:   BuildDate,
		GitCommit:   GitCommit,
		ExtensionID: extensionID,
		Name:        name,
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
