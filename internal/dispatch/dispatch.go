// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package dispatch answers a user message, with a cookbook tool when one
// applies and with the model otherwise.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/curioswitch/cookchat/assistant/internal/intent"
	"github.com/curioswitch/cookchat/assistant/internal/llm"
)

// Reply is the answer to a message.
type Reply struct {
	// Text is the text to send back to the user.
	Text string

	// Intent is the kind of tool that produced Text, or intent.KindNone when
	// it came from the model.
	Intent intent.Kind
}

// New returns an Orchestrator.
func New(router *intent.Router, model llm.Model) *Orchestrator {
	dispatches, err := otel.Meter("github.com/curioswitch/cookchat/assistant/internal/dispatch").Int64Counter(
		"cookchat.assistant.dispatches",
		metric.WithDescription("Number of messages handled, by the intent that answered them."),
	)
	if err != nil {
		slog.Warn("dispatch: creating dispatches counter", "error", err)
		dispatches = noop.Int64Counter{}
	}
	return &Orchestrator{
		router:     router,
		model:      model,
		dispatches: dispatches,
	}
}

// Orchestrator answers messages. It keeps no state between messages and is
// safe for concurrent use.
type Orchestrator struct {
	router     *intent.Router
	model      llm.Model
	dispatches metric.Int64Counter
}

// HandleMessage answers text. If no tool applies, the model is asked with the
// system prompt and text, and the contents of its choices are joined. Model
// errors are returned as is, there is no retry.
func (o *Orchestrator) HandleMessage(ctx context.Context, text string) (Reply, error) {
	if res, ok := o.router.Route(text); ok {
		o.record(ctx, res.Intent.Kind)
		return Reply{Text: res.Text, Intent: res.Intent.Kind}, nil
	}

	choices, err := o.model.Complete(ctx, llm.SystemPrompt(), text)
	if err != nil {
		return Reply{}, fmt.Errorf("dispatch: calling model: %w", err)
	}
	o.record(ctx, intent.KindNone)
	return Reply{Text: strings.Join(choices, ""), Intent: intent.KindNone}, nil
}

func (o *Orchestrator) record(ctx context.Context, kind intent.Kind) {
	slog.DebugContext(ctx, "dispatch: handled message", "intent", kind.String())
	o.dispatches.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", kind.String())))
}
