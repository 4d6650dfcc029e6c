// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
package ollama

import (
	"net/url"
	"strings"
)

// DefaultPort is the well-known Ollama server port, used when the host
// string does not carry an explicit one.
const DefaultPort = "11434"

// ResolveHost normalizes a user-supplied host string into a well-formed base
// URL:
//
//   - a missing scheme is defaulted to "http://"
//   - a missing port is defaulted to DefaultPort, preserving any path suffix
//   - trailing slashes are stripped
//
// The function is idempotent: ResolveHost(ResolveHost(x)) == ResolveHost(x)
// for any input it accepts. It performs no network I/O. Empty input or input
// with no parseable authority returns ErrInvalidHost.
func ResolveHost(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidHost
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "", &ClientError{Type: ErrTypeInvalidHost, Message: "no parseable authority in host: " + raw, Cause: err}
	}

	if u.Port() == "" {
		u.Host = u.Host + ":" + DefaultPort
	}

	return strings.TrimRight(u.String(), "/"), nil
}
