// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
package ollama

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// =============================================================================
// MODEL CATALOG
// =============================================================================

// Catalog queries available-model metadata from the server. It degrades
// failures to "no models found" rather than surfacing errors: the model
// picker shows an empty list and moves on, it never aborts the program.
type Catalog struct {
	client *Client
	diag   io.Writer
}

// NewCatalog creates a catalog over an existing client. Diagnostics go to
// stderr.
func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client, diag: os.Stderr}
}

// NewCatalogWithDiag creates a catalog that writes diagnostics to diag.
func NewCatalogWithDiag(client *Client, diag io.Writer) *Catalog {
	return &Catalog{client: client, diag: diag}
}

// List returns the models the server reports, fresh on every call. Any
// transport or status error yields an empty slice with a diagnostic.
func (c *Catalog) List(ctx context.Context) []ModelInfo {
	models, err := c.client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(c.diag, "error retrieving models: %v\n", err)
		return []ModelInfo{}
	}
	return models
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatSize renders a byte count as binary gigabytes with three decimal
// digits, e.g. FormatSize(1073741824) == "1.000 Gb".
func FormatSize(sizeBytes int64) string {
	const gb = 1 << 30
	return fmt.Sprintf("%.3f Gb", float64(sizeBytes)/gb)
}

// FormatDate reduces an ISO-8601 timestamp to its date portion: everything
// before the "T" time separator. Strings without a separator are returned
// unchanged.
func FormatDate(isoTimestamp string) string {
	if date, _, found := strings.Cut(isoTimestamp, "T"); found {
		return date
	}
	return isoTimestamp
}

// BaseName strips the ":tag" suffix from a model name for display.
func BaseName(modelName string) string {
	base, _, _ := strings.Cut(modelName, ":")
	return base
}
