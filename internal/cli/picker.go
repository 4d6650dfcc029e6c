// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// picker.go - Interactive model selection for ochat.
//
// Shows the server's installed models as a numbered table and lets the user
// pick one. Selection is always optional: 'q' (or end of input) keeps the
// configured default, and when the catalog comes back empty the user can
// still type a model name by hand.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/ochat/internal/ollama"
)

// ChooseModel presents the model catalog and returns the user's choice, or
// defaultModel when the user declines to pick.
func ChooseModel(ctx context.Context, catalog *ollama.Catalog, defaultModel string, in io.Reader, out io.Writer) string {
	models := catalog.List(ctx)
	scanner := bufio.NewScanner(in)

	if len(models) == 0 {
		// No catalog to pick from; fall back to manual entry.
		fmt.Fprintf(out, "No models found on the server.\n")
		fmt.Fprintf(out, "Enter a model name [%s]: ", defaultModel)
		if scanner.Scan() {
			if name := strings.TrimSpace(scanner.Text()); name != "" {
				return name
			}
		}
		return defaultModel
	}

	printModelTable(out, models)

	for {
		fmt.Fprintf(out, "Select a model by number, or q to keep %s: ", modelStyle.Render(defaultModel))
		if !scanner.Scan() {
			return defaultModel
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.EqualFold(input, "q") {
			return defaultModel
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(models) {
			fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("enter a number between 1 and %d, or q", len(models))))
			continue
		}
		return models[n-1].Name
	}
}

// printModelTable renders the catalog as an aligned numbered table.
// Column widths use display width, not byte length, so names with wide
// runes still line up.
func printModelTable(out io.Writer, models []ollama.ModelInfo) {
	nameWidth := len("MODEL")
	for _, m := range models {
		if w := runewidth.StringWidth(m.Name); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Fprintln(out, infoStyle.Render("Available models:"))
	fmt.Fprintf(out, "     %s  %10s  %s\n",
		runewidth.FillRight("MODEL", nameWidth), "SIZE", "MODIFIED")
	for i, m := range models {
		fmt.Fprintf(out, "  %2d. %s  %10s  %s\n",
			i+1,
			runewidth.FillRight(m.Name, nameWidth),
			ollama.FormatSize(m.Size),
			ollama.FormatDate(m.ModifiedAt))
	}
}
