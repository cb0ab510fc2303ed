// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitCoder is implemented by errors that carry their own exit status.
type ExitCoder interface {
	ExitCode() int
}

// Report writes "error: err" to w and returns the exit code for err:
// 0 for nil, the ExitCode() of the first ExitCoder in the chain, or 1.
// A nil err writes nothing.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "error: %v\n", err)

	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Exit reports err on stderr and terminates the process with the
// matching exit code. Exit(nil) exits 0. Use it as the whole body of
// main():
//
//	func main() { process.Exit(run(os.Args, os.Stdout, os.Stderr)) }
func Exit(err error) {
	os.Exit(Report(os.Stderr, err))
}
