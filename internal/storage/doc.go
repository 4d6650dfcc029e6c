// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for the ochat CLI.
//
// Conversations are stored as one indented JSON file per model under
// ~/.ochat/conversations/. Loading tolerates missing or corrupt files by
// returning an empty conversation; saving is atomic (temp file + fsync +
// rename) so an interrupted write never leaves a truncated log.
package storage
