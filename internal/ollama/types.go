// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
package ollama

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Message represents a chat message in the conversation. Messages are
// immutable once appended; their order is the full causal context sent
// with every request.
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // The message content
}

// ChatRequest is the request body for the /api/chat endpoint.
type ChatRequest struct {
	Model    string    `json:"model"`    // Model name (e.g., "deepseek-r1")
	Messages []Message `json:"messages"` // Full conversation history
	Stream   bool      `json:"stream"`   // Always true for this client
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// VersionResponse is the response from the /api/version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// ModelInfo contains information about one available model, as reported by
// /api/tags. Size and ModifiedAt are optional; ModifiedAt stays a raw
// ISO-8601 string because the catalog only ever needs its date portion.
type ModelInfo struct {
	Name       string `json:"name"`
	Size       int64  `json:"size,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// ListModelsResponse is the response from the /api/tags endpoint.
type ListModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// APIError is the error body the server attaches to failed requests and to
// in-stream error records.
type APIError struct {
	Error string `json:"error"`
}

// =============================================================================
// STREAMING TYPES
// =============================================================================

// StreamChunk represents a single decoded record from a streaming response.
type StreamChunk struct {
	// Content is the text delta carried by this chunk (message.content).
	Content string

	// Err is the server-reported error string, if the record carried one.
	Err string

	// Done marks the final record of the stream.
	Done bool
}

// =============================================================================
// HELPER METHODS
// =============================================================================

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: "assistant", Content: content}
}
