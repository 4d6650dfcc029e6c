// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
package ollama

import "testing"

// =============================================================================
// HOST RESOLUTION TESTS
// =============================================================================

func TestResolveHost(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "localhost", "http://localhost:11434"},
		{"host with port", "localhost:8080", "http://localhost:8080"},
		{"scheme no port", "http://localhost", "http://localhost:11434"},
		{"https no port", "https://ollama.example.com", "https://ollama.example.com:11434"},
		{"full url", "http://localhost:11434", "http://localhost:11434"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434"},
		{"path preserved", "http://gateway.example.com/ollama", "http://gateway.example.com:11434/ollama"},
		{"path with port", "http://gateway.example.com:9000/ollama/", "http://gateway.example.com:9000/ollama"},
		{"ip address", "10.0.0.5", "http://10.0.0.5:11434"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveHost(tc.in)
			if err != nil {
				t.Fatalf("ResolveHost(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ResolveHost(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestResolveHost_Idempotent(t *testing.T) {
	inputs := []string{
		"localhost",
		"localhost:8080",
		"https://ollama.example.com",
		"http://gateway.example.com/ollama",
		"10.0.0.5",
	}

	for _, in := range inputs {
		once, err := ResolveHost(in)
		if err != nil {
			t.Fatalf("ResolveHost(%q) returned error: %v", in, err)
		}
		twice, err := ResolveHost(once)
		if err != nil {
			t.Fatalf("ResolveHost(%q) returned error: %v", once, err)
		}
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestResolveHost_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"scheme only", "http://"},
		{"no authority", "http:///path"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveHost(tc.in)
			if err == nil {
				t.Fatalf("ResolveHost(%q) expected error, got nil", tc.in)
			}
			if !IsInvalidHost(err) {
				t.Errorf("ResolveHost(%q) error = %v, want invalid-host error", tc.in, err)
			}
		})
	}
}

func TestResolveHost_NoNetworkCall(t *testing.T) {
	// Resolution of an unroutable name must succeed instantly: the
	// resolver only does string work.
	got, err := ResolveHost("no-such-host.invalid")
	if err != nil {
		t.Fatalf("ResolveHost returned error: %v", err)
	}
	if got != "http://no-such-host.invalid:11434" {
		t.Errorf("ResolveHost = %q", got)
	}
}
