// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/cookchat/assistant/internal/api"
	"github.com/curioswitch/cookchat/assistant/internal/cookbook"
	"github.com/curioswitch/cookchat/assistant/internal/dispatch"
	"github.com/curioswitch/cookchat/assistant/internal/handler/sendmessage"
	"github.com/curioswitch/cookchat/assistant/internal/handler/startconversation"
	"github.com/curioswitch/cookchat/assistant/internal/intent"
	"github.com/curioswitch/cookchat/assistant/internal/llm"
	"github.com/curioswitch/cookchat/assistant/internal/tools"
)

func newTools(t *testing.T) *tools.Tools {
	t.Helper()
	book, err := cookbook.Load()
	require.NoError(t, err)
	return tools.New(book)
}

func newLocal(t *testing.T, model llm.Model) *localAssistant {
	t.Helper()
	return &localAssistant{orchestrator: dispatch.New(intent.NewRouter(newTools(t)), model)}
}

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestAskOffline(t *testing.T) {
	out, err := execute(t, "", "ask", "--offline", "Give", "me", "cooking", "tips", "for", "pasta")
	require.NoError(t, err)
	assert.Equal(t, newTools(t).CookingTips("pasta")+"\n", out)

	out, err = execute(t, "", "ask", "--offline", "Hello")
	require.NoError(t, err)
	assert.Equal(t, offlineReply+"\n", out)
}

func TestAskCustomCookbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cuisines:
  - name: thai
    difficulties:
      - level: easy
        recipes: ["Pad Thai - Stir-fried rice noodles (20 min)"]
ingredients:
  - recipe: pad thai
    servings: 2 people
    prepTime: 10 minutes
    cookTime: 10 minutes
    ingredients: ["200g rice noodles"]
tips:
  - topic: noodles
    tips: ["Soak, don't boil"]
`), 0o600))

	out, err := execute(t, "", "ask", "--offline", "--cookbook", path, "Ingredients for pad thai")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingredients for Pad Thai:")
	assert.Contains(t, out, "• 200g rice noodles")

	_, err = execute(t, "", "ask", "--offline", "--cookbook", filepath.Join(t.TempDir(), "missing.yaml"), "hi")
	require.Error(t, err)
}

func TestChatCommandOffline(t *testing.T) {
	out, err := execute(t, "Find me easy Italian recipes\nquit\n", "chat", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, startconversation.Greeting)
	assert.Contains(t, out, "Assistant: Here are easy italian recipes:")
	assert.Contains(t, out, "Happy cooking!")
}

func TestRemote(t *testing.T) {
	var modelCalls atomic.Int32
	model := modelFunc(func(context.Context, string, string) ([]string, error) {
		modelCalls.Add(1)
		return []string{"remote ", "model"}, nil
	})

	mux := chi.NewRouter()
	mux.Handle(api.NewUnaryHandler(api.StartConversationProcedure, startconversation.NewHandler().StartConversation))
	mux.Handle(api.NewUnaryHandler(api.SendMessageProcedure,
		sendmessage.NewHandler(dispatch.New(intent.NewRouter(newTools(t)), model)).SendMessage))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := execute(t, "", "ask", "--server", srv.URL, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "remote model\n", out)
	assert.Equal(t, int32(1), modelCalls.Load())

	out, err = execute(t, "Show me hard Mexican recipes\nbye\n", "chat", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, startconversation.Greeting)
	assert.Contains(t, out, "Assistant: Here are hard mexican recipes:")
	assert.Equal(t, int32(1), modelCalls.Load())
}

type modelFunc func(ctx context.Context, systemPrompt string, userMessage string) ([]string, error)

func (f modelFunc) Complete(ctx context.Context, systemPrompt string, userMessage string) ([]string, error) {
	return f(ctx, systemPrompt, userMessage)
}

func TestLocalAssistantError(t *testing.T) {
	errBoom := errors.New("boom")
	a := newLocal(t, modelFunc(func(context.Context, string, string) ([]string, error) {
		return nil, errBoom
	}))

	_, err := a.Send(t.Context(), "Hello")
	require.ErrorIs(t, err, errBoom)
}
