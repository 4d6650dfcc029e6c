// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/ochat/internal/config"
	"github.com/jeranaias/ochat/internal/ollama"
	"github.com/jeranaias/ochat/internal/storage"
)

// =============================================================================
// STATE
// =============================================================================

// State describes where a session is in the lifecycle of a single exchange.
type State int

const (
	// StateIdle means no exchange is in flight.
	StateIdle State = iota

	// StateSending means the request is being sent to the server.
	StateSending

	// StateStreaming means response chunks are arriving.
	StateStreaming

	// StateCompleted means the last exchange finished and was persisted.
	StateCompleted

	// StateFailed means the last exchange ended with an error. Whatever
	// content had arrived by then was still persisted.
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session ties together one model, one conversation log, and one Ollama
// client. It owns the in-memory history: every prompt appends a user turn,
// every response appends an assistant turn, and both are persisted after
// each exchange regardless of how the exchange ended.
//
// Session is not safe for concurrent use; callers drive one exchange at a
// time, which matches the interactive loop.
type Session struct {
	client  *ollama.Client
	store   *storage.Store
	model   string
	logPath string
	history []ollama.Message
	state   State

	out  io.Writer // response text, streamed as it arrives
	diag io.Writer // errors and advisory output
}

// New builds a session from resolved configuration. The host is normalized,
// the log directory is created, and any prior conversation for the model is
// loaded so context carries across runs.
func New(cfg *config.Config, out, diag io.Writer) (*Session, error) {
	if out == nil {
		out = os.Stdout
	}
	if diag == nil {
		diag = os.Stderr
	}

	base, err := ollama.ResolveHost(cfg.Host)
	if err != nil {
		return nil, err
	}

	var store *storage.Store
	if cfg.LogDir != "" {
		store, err = storage.NewStoreWithDir(cfg.LogDir)
	} else {
		store, err = storage.NewStore()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to prepare conversation store: %w", err)
	}

	logPath := store.LogPath(cfg.Model)
	return &Session{
		client:  ollama.NewClient(base),
		store:   store,
		model:   cfg.Model,
		logPath: logPath,
		history: store.Load(logPath),
		state:   StateIdle,
		out:     out,
		diag:    diag,
	}, nil
}

// Client returns the underlying Ollama client, for catalog queries.
func (s *Session) Client() *ollama.Client {
	return s.client
}

// Model returns the model this session chats with.
func (s *Session) Model() string {
	return s.model
}

// History returns the current conversation history. The returned slice is
// the session's own; callers must not mutate it.
func (s *Session) History() []ollama.Message {
	return s.history
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// LogPath returns the conversation log file path for this session's model.
func (s *Session) LogPath() string {
	return s.logPath
}

// =============================================================================
// CONNECTION CHECK
// =============================================================================

// TestConnection probes the server's version endpoint and reports the result
// on the session's writers. Returns true when the server answered.
func (s *Session) TestConnection(ctx context.Context) bool {
	version, err := s.client.Version(ctx)
	if err != nil {
		fmt.Fprintf(s.diag, "Error connecting to Ollama at %s: %v\n", s.client.BaseURL(), err)
		fmt.Fprintln(s.diag, "Troubleshooting:")
		fmt.Fprintln(s.diag, "  1. Make sure Ollama is installed and running (ollama serve)")
		fmt.Fprintln(s.diag, "  2. Check that the host is reachable from this machine")
		fmt.Fprintln(s.diag, "  3. Set OLLAMA_HOST if the server is not on localhost:11434")
		return false
	}
	fmt.Fprintf(s.out, "Connected to Ollama %s at %s\n", version, s.client.BaseURL())
	return true
}

// =============================================================================
// SEND
// =============================================================================

// Send appends the prompt as a user turn, streams the model's reply to the
// session's output writer as it arrives, and returns the full reply text.
//
// The exchange is durable even when it fails: whatever content arrived before
// an error or cancellation is finalized as the assistant turn (possibly
// empty) and persisted alongside the user turn, so the log always reflects
// what the user actually saw.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	s.state = StateSending
	s.history = append(s.history, ollama.NewUserMessage(prompt))

	var accumulated string
	streamErr := s.client.ChatStream(ctx, s.model, s.history, func(chunk ollama.StreamChunk) {
		s.state = StateStreaming
		if chunk.Err != "" {
			fmt.Fprintf(s.diag, "server error: %s\n", chunk.Err)
			return
		}
		if chunk.Content != "" {
			accumulated += chunk.Content
			fmt.Fprint(s.out, chunk.Content)
		}
	})

	s.history = append(s.history, ollama.NewAssistantMessage(accumulated))
	if err := s.store.Save(s.logPath, s.history); err != nil {
		fmt.Fprintf(s.diag, "failed to save conversation log: %v\n", err)
	}

	if streamErr != nil {
		s.state = StateFailed
		fmt.Fprintf(s.diag, "\nerror during chat: %v\n", streamErr)
		return accumulated, streamErr
	}

	fmt.Fprintln(s.out)
	s.state = StateCompleted
	return accumulated, nil
}
