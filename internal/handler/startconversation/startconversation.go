// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package startconversation

import (
	"context"

	"github.com/curioswitch/cookchat/assistant/internal/api"
)

// Greeting is shown when a user joins a conversation.
const Greeting = "🍳 Hi there! I'm your personal Cooking AI Assistant! 👨‍🍳\n\n" +
	"I can help you with:\n" +
	"• Finding recipes by cuisine and difficulty\n" +
	"• Extracting ingredients for specific recipes\n" +
	"• Providing cooking tips and techniques\n\n" +
	"Try asking me something like:\n" +
	"- \"Find me easy Italian recipes\"\n" +
	"- \"What ingredients do I need for Kung Pao Chicken?\"\n" +
	"- \"Give me cooking tips for pasta\"\n\n" +
	"What would you like to cook today?"

// NewHandler returns a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Handler starts a conversation.
type Handler struct{}

func (h *Handler) StartConversation(_ context.Context, _ *api.StartConversationRequest) (*api.StartConversationResponse, error) {
	return &api.StartConversationResponse{
		Greeting: Greeting,
	}, nil
}
