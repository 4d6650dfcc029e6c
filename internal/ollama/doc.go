// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
//
// This package implements the conversation client's transport layer for a
// local or remote Ollama server: host normalization, the version health
// check, model discovery, and streaming chat completions over
// newline-delimited JSON.
//
// # Key Types
//
//   - Client: HTTP client for the /api/version, /api/tags and /api/chat endpoints
//   - Message: Chat message with role and content
//   - StreamReader: line-by-line decoder for streaming responses
//   - StreamChunk: one decoded record (text delta, server error, or done marker)
//   - Catalog: model discovery that degrades errors to an empty list
//
// # Usage
//
// Resolve a host and stream a chat request:
//
//	base, err := ollama.ResolveHost("localhost")
//	client := ollama.NewClient(base)
//	err = client.ChatStream(ctx, "deepseek-r1", messages, func(chunk ollama.StreamChunk) {
//	    fmt.Print(chunk.Content)
//	})
//
// Streaming chunks are delivered strictly in arrival order; malformed lines
// are skipped with a diagnostic rather than aborting the stream.
package ollama
