// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/curioswitch/cookchat/assistant/internal/api"
	"github.com/curioswitch/cookchat/assistant/internal/config"
	"github.com/curioswitch/cookchat/assistant/internal/cookbook"
	"github.com/curioswitch/cookchat/assistant/internal/dispatch"
	"github.com/curioswitch/cookchat/assistant/internal/handler/sendmessage"
	"github.com/curioswitch/cookchat/assistant/internal/handler/startconversation"
	"github.com/curioswitch/cookchat/assistant/internal/intent"
	"github.com/curioswitch/cookchat/assistant/internal/llm"
	"github.com/curioswitch/cookchat/assistant/internal/tools"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	book, err := cookbook.Load()
	if err != nil {
		return fmt.Errorf("main: loading cookbook: %w", err)
	}

	model, err := llm.New(ctx, conf.Model, conf.Google.Project)
	if err != nil {
		return fmt.Errorf("main: creating model: %w", err)
	}

	orchestrator := dispatch.New(intent.NewRouter(tools.New(book)), model)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Handle(api.NewUnaryHandler(
			api.StartConversationProcedure,
			startconversation.NewHandler().StartConversation,
		))

		r.Handle(api.NewUnaryHandler(
			api.SendMessageProcedure,
			sendmessage.NewHandler(orchestrator).SendMessage,
		))
	})

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
