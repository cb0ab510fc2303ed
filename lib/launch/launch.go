// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bureau-foundation/dosbox-launcher/lib/config"
)

// Streams overrides the child's standard streams. A nil field means
// the child inherits the corresponding stream of the current process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// SpawnError is returned when the emulator process cannot be started.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s: %v", strconv.Quote(e.Executable), e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// errEmptyExecutable is reported when dosbox_executable is "".
// exec.Command("") would otherwise surface a confusing lookup error.
var errEmptyExecutable = errors.New("executable name is empty")

// Command builds the emulator invocation for cfg. The returned command
// has not been started. Streams left nil in streams are inherited from
// the current process.
func Command(cfg *config.Config, streams Streams) *exec.Cmd {
	cmd := exec.Command(cfg.DOSBoxExecutable, cfg.GameExecutable)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if streams.Stdin != nil {
		cmd.Stdin = streams.Stdin
	}
	if streams.Stdout != nil {
		cmd.Stdout = streams.Stdout
	}
	if streams.Stderr != nil {
		cmd.Stderr = streams.Stderr
	}
	return cmd
}

// Describe renders cmd as a shell-like command line for diagnostics.
// Arguments containing whitespace or quotes are quoted.
func Describe(cmd *exec.Cmd) string {
	parts := make([]string, 0, len(cmd.Args))
	parts = append(parts, quoteIfNeeded(cmd.Path))
	for _, argument := range cmd.Args[1:] {
		parts = append(parts, quoteIfNeeded(argument))
	}
	return strings.Join(parts, " ")
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'\\") {
		return strconv.Quote(s)
	}
	return s
}

// Start starts a command built by [Command] without waiting for it.
// Failures are reported as a [*SpawnError] naming cmd.Args[0], the
// executable as the user wrote it.
func Start(cmd *exec.Cmd) (*Child, error) {
	executable := cmd.Args[0]
	if executable == "" {
		return nil, &SpawnError{Executable: executable, Err: errEmptyExecutable}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Executable: executable, Err: err}
	}
	return &Child{cmd: cmd}, nil
}

// Child is a started emulator process.
type Child struct {
	cmd *exec.Cmd
}

// PID returns the operating system process ID of the child.
func (c *Child) PID() int {
	return c.cmd.Process.Pid
}

// Wait blocks until the child exits and releases its resources. The
// returned error is nil for a zero exit status and an *exec.ExitError
// otherwise.
func (c *Child) Wait() error {
	return c.cmd.Wait()
}
