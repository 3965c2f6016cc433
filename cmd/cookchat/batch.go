// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Answer every line of a file, one message per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("main: opening %s: %w", args[0], err)
			}
			defer func() {
				_ = f.Close()
			}()

			messages, err := readMessages(f)
			if err != nil {
				return err
			}

			a, err := newAssistant(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), a, messages, opts.parallel, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 4, "maximum number of messages answered at once")
	return cmd
}

func readMessages(r io.Reader) ([]string, error) {
	var messages []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("main: reading messages: %w", err)
	}
	return messages, nil
}

// runBatch answers messages concurrently and writes the replies in input order.
// The first failure stops the batch.
func runBatch(ctx context.Context, a assistant, messages []string, parallel int, out io.Writer) error {
	replies := make([]string, len(messages))

	grp, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		grp.SetLimit(parallel)
	}
	for i, msg := range messages {
		grp.Go(func() error {
			reply, err := a.Send(ctx, msg)
			if err != nil {
				return fmt.Errorf("main: answering %q: %w", msg, err)
			}
			replies[i] = reply
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for i, msg := range messages {
		if _, err := fmt.Fprintf(out, "> %s\n%s\n\n", msg, strings.TrimRight(replies[i], "\n")); err != nil {
			return fmt.Errorf("main: writing reply: %w", err)
		}
	}
	return nil
}
