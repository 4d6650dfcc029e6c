// ochat - A streaming terminal chat client for Ollama.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/ochat/internal/cli"
	"github.com/jeranaias/ochat/internal/config"
	"github.com/jeranaias/ochat/internal/ollama"
	"github.com/jeranaias/ochat/internal/session"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ochat: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	sess, err := session.New(cfg, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if !sess.TestConnection(ctx) {
		return errors.New("cannot continue without a reachable Ollama server")
	}

	// Any arguments form a one-shot prompt; no arguments means interactive.
	prompt := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if prompt != "" {
		return cli.RunOnce(ctx, sess, prompt)
	}

	catalog := ollama.NewCatalog(sess.Client())
	chosen := cli.ChooseModel(ctx, catalog, cfg.Model, os.Stdin, os.Stdout)
	if chosen != cfg.Model {
		// A different model means a different conversation log; rebuild
		// the session so its history matches the chosen model.
		cfg.Model = chosen
		sess, err = session.New(cfg, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
	}

	return cli.RunInteractive(ctx, sess)
}
