// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
package ollama

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// STREAM READER
// =============================================================================

// StreamReader decodes a streaming chat response: a finite sequence of
// newline-delimited JSON records. Each non-empty line is decoded
// independently; a line that fails to parse is skipped with a diagnostic so
// that one malformed chunk cannot abort an otherwise-good response. The
// reader is not restartable and does not interpret record contents beyond
// extracting the delta, error, and done fields.
type StreamReader struct {
	reader *bufio.Reader
	diag   io.Writer
}

// NewStreamReader creates a new stream reader from an io.Reader.
// Diagnostics for skipped lines go to stderr.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{
		reader: bufio.NewReader(r),
		diag:   os.Stderr,
	}
}

// NewStreamReaderWithDiag creates a stream reader that writes skipped-line
// diagnostics to diag instead of stderr.
func NewStreamReaderWithDiag(r io.Reader, diag io.Writer) *StreamReader {
	return &StreamReader{
		reader: bufio.NewReader(r),
		diag:   diag,
	}
}

// Process reads the stream to completion and calls the callback for each
// decoded chunk, strictly in arrival order. It blocks until the underlying
// transport closes, a record with Done arrives, or the context is cancelled.
func (s *StreamReader) Process(ctx context.Context, callback func(chunk StreamChunk)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			chunk, err := s.readChunk()
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}

			if chunk != nil {
				callback(*chunk)
				if chunk.Done {
					return nil
				}
			}
		}
	}
}

// readChunk reads and parses a single line from the stream. It returns
// (nil, nil) for lines that carry no record (blank or malformed), and
// io.EOF once the transport is exhausted.
func (s *StreamReader) readChunk() (*StreamChunk, error) {
	line, err := s.reader.ReadBytes('\n')
	if err != nil {
		if len(line) == 0 {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
		// Decode the final line even when the stream ends without a
		// trailing newline.
	}

	line = trimLineEnding(line)
	if len(line) == 0 {
		return nil, nil
	}

	var record struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		Error string `json:"error"`
		Done  bool   `json:"done"`
	}
	if jsonErr := json.Unmarshal(line, &record); jsonErr != nil {
		fmt.Fprintf(s.diag, "skipping malformed stream line: %s\n", line)
		return nil, nil
	}

	return &StreamChunk{
		Content: record.Message.Content,
		Err:     record.Error,
		Done:    record.Done,
	}, nil
}

// trimLineEnding strips a trailing CRLF or LF from a raw line.
func trimLineEnding(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
