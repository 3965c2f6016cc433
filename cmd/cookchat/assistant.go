// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"fmt"

	"github.com/curioswitch/cookchat/assistant/internal/api"
	"github.com/curioswitch/cookchat/assistant/internal/dispatch"
	"github.com/curioswitch/cookchat/assistant/internal/handler/startconversation"
)

type localAssistant struct {
	orchestrator *dispatch.Orchestrator
}

func (a *localAssistant) Greeting(context.Context) (string, error) {
	return startconversation.Greeting, nil
}

func (a *localAssistant) Send(ctx context.Context, text string) (string, error) {
	reply, err := a.orchestrator.HandleMessage(ctx, text)
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}

type remoteAssistant struct {
	client *api.Client
}

func (a *remoteAssistant) Greeting(ctx context.Context) (string, error) {
	res, err := a.client.StartConversation(ctx, &api.StartConversationRequest{})
	if err != nil {
		return "", fmt.Errorf("main: starting conversation: %w", err)
	}
	return res.Greeting, nil
}

func (a *remoteAssistant) Send(ctx context.Context, text string) (string, error) {
	res, err := a.client.SendMessage(ctx, &api.SendMessageRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("main: sending message: %w", err)
	}
	return res.Text, nil
}
