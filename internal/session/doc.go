// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session orchestrates a chat exchange end to end: it resolves the
// server host, loads the model's conversation history, streams replies, and
// persists the updated history after every exchange.
//
// # Key Types
//
//   - Session: one model, one log file, one client
//   - State: lifecycle of a single exchange
//
// # Usage
//
//	sess, err := session.New(cfg, os.Stdout, os.Stderr)
//	if err != nil {
//		return err
//	}
//	if !sess.TestConnection(ctx) {
//		os.Exit(1)
//	}
//	reply, err := sess.Send(ctx, "why is the sky blue?")
//
// A failed or cancelled exchange still persists the user turn together with
// whatever assistant content had arrived, so history never silently loses a
// prompt the user typed.
package session
