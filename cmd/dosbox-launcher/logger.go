// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"

	"golang.org/x/term"
)

// newLogger creates the diagnostic logger writing to w. A terminal gets
// slog.TextHandler for human-readable output; anything else (pipes,
// files, test buffers) gets slog.JSONHandler.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(newHandler(w, isTerminal(w)))
}

func newHandler(w io.Writer, terminal bool) slog.Handler {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if terminal {
		return slog.NewTextHandler(w, options)
	}
	return slog.NewJSONHandler(w, options)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(file.Fd()))
}
