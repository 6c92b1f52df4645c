// SPDX-License-Identifier: MIT

// Command lalg evaluates vector and matrix job files and prints projection
// matrices.
//
//	lalg run jobs.yaml --tolerance 1e-12
//	lalg projection --fov 60 --ratio 1.777 --near 0.1 --far 100
//	lalg ops
//
// Exit status is 0 on success, 1 on a usage or load error and 2 when a job
// ran but at least one of its steps failed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitStepsFailed = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an Execute error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errStepsFailed):
		return exitStepsFailed
	default:
		return exitError
	}
}

// report prints err followed by any hints attached along the way.
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, h := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "HINT: %s\n", h)
	}
}
