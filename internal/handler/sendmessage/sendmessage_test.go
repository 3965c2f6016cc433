// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package sendmessage

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/cookchat/assistant/internal/api"
	"github.com/curioswitch/cookchat/assistant/internal/cookbook"
	"github.com/curioswitch/cookchat/assistant/internal/dispatch"
	"github.com/curioswitch/cookchat/assistant/internal/intent"
	"github.com/curioswitch/cookchat/assistant/internal/tools"
)

type modelFunc func(ctx context.Context, systemPrompt string, userMessage string) ([]string, error)

func (f modelFunc) Complete(ctx context.Context, systemPrompt string, userMessage string) ([]string, error) {
	return f(ctx, systemPrompt, userMessage)
}

func newClient(t *testing.T, model modelFunc) (*api.Client, *tools.Tools) {
	t.Helper()

	book, err := cookbook.Load()
	require.NoError(t, err)
	tl := tools.New(book)
	h := NewHandler(dispatch.New(intent.NewRouter(tl), model))

	mux := chi.NewRouter()
	mux.Handle(api.NewUnaryHandler(api.SendMessageProcedure, h.SendMessage))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return api.NewClient(srv.Client(), srv.URL), tl
}

func TestSendMessageTool(t *testing.T) {
	client, tl := newClient(t, func(context.Context, string, string) ([]string, error) {
		t.Error("model should not be called")
		return nil, nil
	})

	res, err := client.SendMessage(t.Context(), &api.SendMessageRequest{Text: "What ingredients do I need for butter chicken?"})
	require.NoError(t, err)
	assert.Equal(t, tl.ExtractIngredients("butter chicken"), res.Text)
	assert.Equal(t, "ingredient_lookup", res.Intent)
}

func TestSendMessageModel(t *testing.T) {
	client, _ := newClient(t, func(_ context.Context, _ string, userMessage string) ([]string, error) {
		return []string{"You said: ", userMessage}, nil
	})

	res, err := client.SendMessage(t.Context(), &api.SendMessageRequest{Text: "Hello, how are you?"})
	require.NoError(t, err)
	assert.Equal(t, "You said: Hello, how are you?", res.Text)
	assert.Equal(t, "none", res.Intent)
}

func TestSendMessageEmpty(t *testing.T) {
	client, _ := newClient(t, func(context.Context, string, string) ([]string, error) {
		t.Error("model should not be called")
		return nil, nil
	})

	for _, text := range []string{"", "  ", "\n\t"} {
		_, err := client.SendMessage(t.Context(), &api.SendMessageRequest{Text: text})
		require.Error(t, err)
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err), "text %q", text)
	}
}

func TestSendMessageModelError(t *testing.T) {
	client, _ := newClient(t, func(context.Context, string, string) ([]string, error) {
		return nil, errors.New("rate limited")
	})

	_, err := client.SendMessage(t.Context(), &api.SendMessageRequest{Text: "Hello, how are you?"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))
}
