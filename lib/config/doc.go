// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the launcher's YAML configuration file.
//
// The file names two things and nothing else:
//
//	dosbox_executable: /usr/bin/dosbox
//	game_executable: /games/vikings/VIKINGS.EXE
//
// Both keys are required and must be YAML strings. A missing key, a
// null value, or a non-string value (number, boolean, sequence,
// mapping) is a [*ParseError] wrapping one [*FieldError] per offending
// key. Empty strings are accepted here; an empty executable fails
// later, when the launcher tries to start it. Unknown keys are ignored,
// but a repeated key or a second YAML document is a syntax-level
// [*ParseError].
//
// There are no defaults, no environment variable expansion, and no
// search path: [LoadFile] reads exactly the path it is given.
//
// This package depends on no other Bureau packages.
package config
