// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements ochat's terminal frontend: the interactive chat
// loop with input history, the model picker, and terminal capability
// detection.
//
// # Key Types
//
//   - ChatCLI: readline-style input with persistent history
//   - RunInteractive: the chat REPL
//   - RunOnce: single prompt, single response
//   - ChooseModel: numbered model selection
//
// Color output respects NO_COLOR, FORCE_COLOR, and TTY detection; piped
// output is plain text.
package cli
