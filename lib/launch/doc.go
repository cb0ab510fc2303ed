// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package launch starts the emulator named by a [config.Config].
//
// [Command] builds the invocation: the emulator executable with the
// game executable as its single positional argument. [Start] starts it
// without waiting. The child inherits the caller's standard streams
// unless [Streams] overrides them, stays in the caller's process group
// and session, and keeps running after the caller exits.
//
// The returned [Child] is a handle, not a supervisor. The launcher
// binary prints [Child.PID] and exits. [Child.Wait] exists for callers
// that do want to reap the process.
//
// A start failure (executable not found in PATH, not executable,
// empty name) is returned as a [*SpawnError].
package launch
