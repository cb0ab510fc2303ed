// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/dosbox-launcher/lib/config"
	"github.com/bureau-foundation/dosbox-launcher/lib/launch"
	"github.com/bureau-foundation/dosbox-launcher/lib/process"
	"github.com/bureau-foundation/dosbox-launcher/lib/version"
)

const binaryName = "dosbox-launcher"

func main() {
	process.Exit(run(os.Args, os.Stdout, os.Stderr, launch.Streams{}))
}

// run is the whole launcher. args is the full argument vector including
// the program name, and must hold exactly one more element: the config
// path, taken verbatim even if it starts with "-". Any other count is
// not an error: it prints usage to stderr and returns nil.
//
// stdout and stderr receive the launcher's own output. The emulator
// gets childStreams, where nil fields inherit this process's streams.
func run(args []string, stdout, stderr io.Writer, childStreams launch.Streams) error {
	logger := newLogger(stderr)
	logger.Info("command-line arguments", "args", args, "version", version.Info())

	if len(args) != 2 {
		program := binaryName
		if len(args) > 0 {
			program = args[0]
		}
		fmt.Fprintf(stderr, "Usage: %s <path_to_config.yaml>\n", program)
		return nil
	}
	configPath := args[1]

	logger.Info("using configuration file", "path", configPath)

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	logger.Info("configuration loaded", "config", cfg)

	cmd := launch.Command(cfg, childStreams)
	logger.Info("launching DOSBox", "command", launch.Describe(cmd))

	child, err := launch.Start(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "DOSBox process started with PID: %d\n", child.PID())
	return nil
}
