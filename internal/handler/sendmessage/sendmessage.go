// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package sendmessage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/curioswitch/cookchat/assistant/internal/api"
	"github.com/curioswitch/cookchat/assistant/internal/dispatch"
)

var errEmptyText = errors.New("sendmessage: text is required")

// Dispatcher answers a single user message.
type Dispatcher interface {
	HandleMessage(ctx context.Context, text string) (dispatch.Reply, error)
}

// NewHandler returns a Handler.
func NewHandler(dispatcher Dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
	}
}

// Handler answers messages sent by the user.
type Handler struct {
	dispatcher Dispatcher
}

// SendMessage answers req.Text with a cookbook tool or the model. Blank text
// is rejected with CodeInvalidArgument without reaching the dispatcher.
func (h *Handler) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.SendMessageResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errEmptyText)
	}

	reply, err := h.dispatcher.HandleMessage(ctx, req.Text)
	if err != nil {
		slog.ErrorContext(ctx, "sendmessage: handling message", "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("sendmessage: handling message: %w", err))
	}

	return &api.SendMessageResponse{
		Text:   reply.Text,
		Intent: reply.Intent.String(),
	}, nil
}
