// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jeranaias/ochat/internal/ollama"
)

// newTestCatalog builds a catalog against a server returning the given
// /api/tags body.
func newTestCatalog(t *testing.T, body string) (*ollama.Catalog, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(body))
	}))
	catalog := ollama.NewCatalogWithDiag(ollama.NewClient(server.URL), &bytes.Buffer{})
	return catalog, server.Close
}

const twoModelsBody = `{"models":[
	{"name":"llama3.2:3b","size":2147483648,"modified_at":"2025-01-15T10:30:00Z"},
	{"name":"deepseek-r1:7b","size":4294967296,"modified_at":"2025-02-01T08:00:00Z"}
]}`

func TestChooseModel_SelectsByNumber(t *testing.T) {
	catalog, done := newTestCatalog(t, twoModelsBody)
	defer done()

	out := &bytes.Buffer{}
	got := ChooseModel(context.Background(), catalog, "default-model", strings.NewReader("2\n"), out)

	if got != "deepseek-r1:7b" {
		t.Errorf("ChooseModel() = %q, want %q", got, "deepseek-r1:7b")
	}
	if !strings.Contains(out.String(), "llama3.2:3b") {
		t.Errorf("output missing model listing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "2.000 Gb") {
		t.Errorf("output missing formatted size:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "2025-01-15") {
		t.Errorf("output missing formatted date:\n%s", out.String())
	}
}

func TestChooseModel_QuitKeepsDefault(t *testing.T) {
	catalog, done := newTestCatalog(t, twoModelsBody)
	defer done()

	for _, input := range []string{"q\n", "Q\n", "\n"} {
		got := ChooseModel(context.Background(), catalog, "default-model", strings.NewReader(input), &bytes.Buffer{})
		if got != "default-model" {
			t.Errorf("ChooseModel(%q) = %q, want default kept", input, got)
		}
	}
}

func TestChooseModel_InvalidThenValid(t *testing.T) {
	catalog, done := newTestCatalog(t, twoModelsBody)
	defer done()

	out := &bytes.Buffer{}
	got := ChooseModel(context.Background(), catalog, "default-model", strings.NewReader("99\nabc\n1\n"), out)

	if got != "llama3.2:3b" {
		t.Errorf("ChooseModel() = %q, want %q", got, "llama3.2:3b")
	}
	if !strings.Contains(out.String(), "enter a number between 1 and 2") {
		t.Errorf("output missing reprompt hint:\n%s", out.String())
	}
}

func TestChooseModel_EOFKeepsDefault(t *testing.T) {
	catalog, done := newTestCatalog(t, twoModelsBody)
	defer done()

	got := ChooseModel(context.Background(), catalog, "default-model", strings.NewReader(""), &bytes.Buffer{})
	if got != "default-model" {
		t.Errorf("ChooseModel() = %q, want default kept on EOF", got)
	}
}

func TestChooseModel_EmptyCatalogManualEntry(t *testing.T) {
	catalog, done := newTestCatalog(t, `{"models":[]}`)
	defer done()

	t.Run("typed name", func(t *testing.T) {
		got := ChooseModel(context.Background(), catalog, "default-model", strings.NewReader("my-model:latest\n"), &bytes.Buffer{})
		if got != "my-model:latest" {
			t.Errorf("ChooseModel() = %q, want manual entry", got)
		}
	})

	t.Run("blank keeps default", func(t *testing.T) {
		got := ChooseModel(context.Background(), catalog, "default-model", strings.NewReader("\n"), &bytes.Buffer{})
		if got != "default-model" {
			t.Errorf("ChooseModel() = %q, want default kept", got)
		}
	})
}

func TestIsQuitCommand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"quit", true},
		{"exit", true},
		{"QUIT", true},
		{"Exit", true},
		{"quit now", false},
		{"hello", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isQuitCommand(tt.input); got != tt.want {
			t.Errorf("isQuitCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
