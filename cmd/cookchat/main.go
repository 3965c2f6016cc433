// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Command cookchat talks to the cooking assistant from a terminal, either
// in-process or against a running server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/curioswitch/cookchat/assistant/internal/api"
	"github.com/curioswitch/cookchat/assistant/internal/cookbook"
	"github.com/curioswitch/cookchat/assistant/internal/dispatch"
	"github.com/curioswitch/cookchat/assistant/internal/intent"
	"github.com/curioswitch/cookchat/assistant/internal/llm"
	"github.com/curioswitch/cookchat/assistant/internal/tools"
)

const offlineReply = "I can only help with recipes, ingredients and cooking tips while offline. " +
	"Try \"Find me easy Italian recipes\"."

type options struct {
	offline  bool
	server   string
	cookbook string
	verbose  bool
	parallel int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "cookchat",
		Short:        "Chat with the cooking assistant",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&opts.offline, "offline", false, "answer without a model, only cookbook tools are available")
	root.PersistentFlags().StringVar(&opts.server, "server", "", "URL of a running assistant server, e.g. http://localhost:8080")
	root.PersistentFlags().StringVar(&opts.cookbook, "cookbook", "", "path to a cookbook YAML file to use instead of the bundled one")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "chat",
			Short: "Start an interactive conversation",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newAssistant(cmd.Context(), opts)
				if err != nil {
					return err
				}
				return runChat(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "ask <message>",
			Short: "Send a single message and print the reply",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newAssistant(cmd.Context(), opts)
				if err != nil {
					return err
				}
				reply, err := a.Send(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
				return err
			},
		},
		newBatchCmd(opts),
	)

	return root
}

// assistant is the conversation partner of the CLI.
type assistant interface {
	Greeting(ctx context.Context) (string, error)
	Send(ctx context.Context, text string) (string, error)
}

func newAssistant(ctx context.Context, opts *options) (assistant, error) {
	if opts.server != "" {
		return &remoteAssistant{client: api.NewClient(http.DefaultClient, opts.server)}, nil
	}

	book, err := loadCookbook(opts.cookbook)
	if err != nil {
		return nil, err
	}

	var model llm.Model = llm.Canned(offlineReply)
	if !opts.offline {
		conf, err := loadConfig()
		if err != nil {
			return nil, err
		}
		model, err = llm.New(ctx, conf.Model, conf.Google.Project)
		if err != nil {
			return nil, fmt.Errorf("main: creating model: %w", err)
		}
	}

	return &localAssistant{
		orchestrator: dispatch.New(intent.NewRouter(tools.New(book)), model),
	}, nil
}

func loadCookbook(path string) (*cookbook.Cookbook, error) {
	if path == "" {
		book, err := cookbook.Load()
		if err != nil {
			return nil, fmt.Errorf("main: loading cookbook: %w", err)
		}
		return book, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("main: reading cookbook %s: %w", path, err)
	}
	book, err := cookbook.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("main: parsing cookbook %s: %w", path, err)
	}
	return book, nil
}
