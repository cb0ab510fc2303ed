// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for launcher packages.
//
// [WriteFile] writes a fixture file (a YAML config, a shell script
// standing in for an emulator) into a test directory and returns its
// path. [RequireFile] waits for a file to appear, for side effects of
// a process the test cannot Wait on.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) so that tests waiting on a child
// process do not need direct time.After calls.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no launcher-internal dependencies.
package testutil
