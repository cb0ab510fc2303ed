// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers. It centralizes
// the one raw I/O pattern that happens after the structured logger is
// gone: reporting the error returned by run() and choosing the exit
// code.
package process
