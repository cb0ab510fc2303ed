// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// dosbox-launcher starts a DOS game under DOSBox from a YAML file.
//
// Usage:
//
//	dosbox-launcher <path_to_config.yaml>
//
// The config file names the emulator and the game:
//
//	dosbox_executable: /usr/bin/dosbox
//	game_executable: /games/vikings/VIKINGS.EXE
//
// The launcher runs "<dosbox_executable> <game_executable>", prints
// the child's PID to stdout, and exits without waiting for the game.
// The emulator inherits the launcher's terminal.
//
// There are no flags. The single argument is the config path, taken
// verbatim even when it starts with "-". Invoking the launcher with any
// other number of arguments prints the usage line to stderr and exits 0. A config file that
// cannot be read or parsed, or an emulator that cannot be started,
// exits 1 with "error: ..." on stderr.
//
// Diagnostics are structured slog records on stderr: text when stderr
// is a terminal, JSON otherwise. The first record carries the build
// version.
package main
