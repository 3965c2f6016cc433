// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

var exitCommands = []string{"exit", "quit", "bye", "goodbye"}

// runChat reads messages from in until an exit command or EOF. A failed
// message is reported and the conversation continues.
func runChat(ctx context.Context, a assistant, in io.Reader, out io.Writer) error {
	greeting, err := a.Greeting(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n\nType 'exit' or 'quit' to end the conversation.\n\n", greeting)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if slices.Contains(exitCommands, strings.ToLower(text)) {
			fmt.Fprintln(out, "\n👋 Thanks for using the Cooking AI Agent! Happy cooking!")
			return nil
		}

		reply, err := a.Send(ctx, text)
		if err != nil {
			slog.ErrorContext(ctx, "main: handling message", "error", err)
			fmt.Fprintf(out, "\n❌ An error occurred: %v\nPlease try again.\n\n", err)
			continue
		}
		fmt.Fprintf(out, "Assistant: %s\n\n", strings.TrimRight(reply, "\n"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("main: reading input: %w", err)
	}

	fmt.Fprintln(out, "\n👋 Goodbye! Happy cooking!")
	return nil
}
