// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command which prints the executable paths a shell would run for each command.
//
//	which [flags] <command>...
//
// The exit status is 1 when any command is not found.
package main

import (
	"errors"
	"os"

	"github.com/jongio/azd-which/cliout"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			cliout.Error("%v", err)
		}
		os.Exit(1)
	}
}
