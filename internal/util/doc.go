// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the ochat CLI.
//
// It contains the atomic file-write primitive used by conversation
// persistence and rune-safe string helpers shared by the CLI display code.
package util
