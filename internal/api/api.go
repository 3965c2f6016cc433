// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package api defines the AssistantService RPC interface. Messages are plain
// structs sent as JSON over the connect protocol.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// ServiceName is the fully-qualified name of the AssistantService.
	ServiceName = "cookchat.assistant.v1.AssistantService"

	// StartConversationProcedure is the path of AssistantService.StartConversation.
	StartConversationProcedure = "/" + ServiceName + "/StartConversation"

	// SendMessageProcedure is the path of AssistantService.SendMessage.
	SendMessageProcedure = "/" + ServiceName + "/SendMessage"
)

type StartConversationRequest struct{}

type StartConversationResponse struct {
	// Greeting is the message to show the user before they say anything.
	Greeting string `json:"greeting"`
}

type SendMessageRequest struct {
	// Text is the message from the user.
	Text string `json:"text"`
}

type SendMessageResponse struct {
	// Text is the reply to the user.
	Text string `json:"text"`

	// Intent is the tool that answered, e.g. "recipe_search", or "none" if the
	// reply came from the model.
	Intent string `json:"intent"`
}

// Codec serializes messages as JSON. It replaces connect's default JSON codec,
// which only supports protobuf messages.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewUnaryHandler returns the path and handler serving target for procedure.
func NewUnaryHandler[Req, Res any](procedure string, target func(context.Context, *Req) (*Res, error), opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	return procedure, connect.NewUnaryHandler(procedure, func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
		res, err := target(ctx, req.Msg)
		if err != nil {
			return nil, err
		}
		return connect.NewResponse(res), nil
	}, opts...)
}

// NewClient returns a Client for the AssistantService at baseURL, e.g.
// http://localhost:8080.
func NewClient(httpClient connect.HTTPClient, baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		startConversation: connect.NewClient[StartConversationRequest, StartConversationResponse](
			httpClient, baseURL+StartConversationProcedure, connect.WithCodec(Codec{})),
		sendMessage: connect.NewClient[SendMessageRequest, SendMessageResponse](
			httpClient, baseURL+SendMessageProcedure, connect.WithCodec(Codec{})),
	}
}

// Client calls the AssistantService.
type Client struct {
	startConversation *connect.Client[StartConversationRequest, StartConversationResponse]
	sendMessage       *connect.Client[SendMessageRequest, SendMessageResponse]
}

func (c *Client) StartConversation(ctx context.Context, req *StartConversationRequest) (*StartConversationResponse, error) {
	res, err := c.startConversation.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c *Client) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error) {
	res, err := c.sendMessage.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}
