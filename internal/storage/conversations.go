// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for the ochat CLI.
package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jeranaias/ochat/internal/ollama"
	"github.com/jeranaias/ochat/internal/util"
)

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// Store handles conversation log persistence. Each model gets one JSON log
// file holding the full ordered message sequence; the file is the
// authoritative conversation between process invocations.
type Store struct {
	// BaseDir is the directory for conversation logs.
	// Default: ~/.ochat/conversations/
	BaseDir string
}

// NewStore creates a conversation store under the user's home directory.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithDir(filepath.Join(homeDir, ".ochat", "conversations"))
}

// NewStoreWithDir creates a store with a custom directory.
func NewStoreWithDir(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &Store{BaseDir: baseDir}, nil
}

// LogPath returns the log file path for a model. Path-unsafe characters in
// the model name ("/" and ":") are replaced so every model maps to exactly
// one file.
func (s *Store) LogPath(model string) string {
	return filepath.Join(s.BaseDir, util.SanitizeModelName(model)+"_conversation_log.json")
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the persisted message sequence from path. A missing file or
// malformed content yields an empty conversation: starting fresh is a
// deliberate policy, not an error, so decode failures never propagate.
func (s *Store) Load(path string) []ollama.Message {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ollama.Message{}
	}

	var messages []ollama.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return []ollama.Message{}
	}
	if messages == nil {
		return []ollama.Message{}
	}
	return messages
}

// =============================================================================
// SAVE
// =============================================================================

// Save serializes the full message sequence to path. The file is indented
// for human readability and written with HTML escaping disabled so content
// round-trips byte-exact, non-ASCII included.
//
// RELIABILITY: the write goes through util.AtomicWriteFile (temp file, fsync,
// rename), so an interrupted process never leaves a truncated log behind.
func (s *Store) Save(path string, messages []ollama.Message) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(messages); err != nil {
		return err
	}

	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}
