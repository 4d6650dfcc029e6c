// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat loop for ochat.
//
// USABILITY: Markdown-free streaming output with readline-style history
//
// Interactive commands (during chat):
//   quit, exit          Exit chat (case-insensitive)
//   Ctrl+C              Cancel current generation
//   Ctrl+D              Exit chat

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/jeranaias/ochat/internal/config"
	"github.com/jeranaias/ochat/internal/ollama"
	"github.com/jeranaias/ochat/internal/session"
	"github.com/jeranaias/ochat/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		// Fallback to temp directory if config dir unavailable
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Non-empty input is added to history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history to file with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// INTERACTIVE LOOP
// =============================================================================

// isQuitCommand reports whether input asks to leave the chat.
func isQuitCommand(input string) bool {
	return strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit")
}

// RunInteractive drives the chat REPL for the given session. It returns when
// the user quits, on EOF, or when ctx itself is cancelled. A SIGINT during
// generation cancels only the in-flight exchange, not the loop.
func RunInteractive(ctx context.Context, sess *session.Session) error {
	input := NewChatCLI()
	defer input.Close()

	printWelcome(sess)

	// Cancel handle for the exchange currently streaming, if any.
	var cancelCurrent context.CancelFunc

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		for range sigChan {
			if cancelCurrent != nil {
				cancelCurrent()
				cancelCurrent = nil
				fmt.Fprintln(os.Stderr, "\n"+warningStyle.Render("[Cancelled]"))
			}
		}
	}()

	// Prompt carries the model's base name so it is obvious which log the
	// conversation lands in.
	prompt := promptStyle.Render(ollama.BaseName(sess.Model()) + "> ")
	for {
		line, err := input.ReadInput(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				// Ctrl+C at the prompt exits gracefully
				fmt.Println()
				return nil
			}
			// EOF (Ctrl+D) or terminal error - exit gracefully
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isQuitCommand(line) {
			fmt.Println(infoStyle.Render("Goodbye."))
			return nil
		}

		sendCtx, cancel := context.WithCancel(ctx)
		cancelCurrent = cancel
		_, sendErr := sess.Send(sendCtx, line)
		cancelCurrent = nil
		cancel()

		if sendErr != nil && sendCtx.Err() == nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), sendErr)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// RunOnce sends a single prompt and exits. Used for the one-shot
// command-line mode.
func RunOnce(ctx context.Context, sess *session.Session, prompt string) error {
	_, err := sess.Send(ctx, prompt)
	return err
}

// printWelcome shows the session banner.
func printWelcome(sess *session.Session) {
	fmt.Printf("Chatting with %s\n", modelStyle.Render(sess.Model()))
	if n := len(sess.History()); n > 0 {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Loaded %d messages of prior conversation", n)))
		if last := lastUserPrompt(sess.History()); last != "" {
			fmt.Println(dimStyle.Render("last prompt: " + util.TruncateRunes(last, 60)))
		}
	}
	fmt.Println(dimStyle.Render("Type quit or exit to leave, Ctrl+C to cancel a response."))
}

// lastUserPrompt returns the most recent user turn, or "" for an empty
// history.
func lastUserPrompt(history []ollama.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return history[i].Content
		}
	}
	return ""
}
