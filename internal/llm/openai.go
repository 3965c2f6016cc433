// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// NewOpenAI returns an OpenAI model. Without options, the API key is read from
// OPENAI_API_KEY. Requests are never retried.
func NewOpenAI(model string, opts ...option.RequestOption) *OpenAI {
	opts = append([]option.RequestOption{option.WithMaxRetries(0)}, opts...)
	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// OpenAI answers with the OpenAI chat completions API.
type OpenAI struct {
	client openai.Client
	model  string
}

func (o *OpenAI) Complete(ctx context.Context, systemPrompt string, userMessage string) ([]string, error) {
	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm: creating openai chat completion: %w", err)
	}

	contents := make([]string, len(res.Choices))
	for i, choice := range res.Choices {
		contents[i] = choice.Message.Content
	}
	return contents, nil
}
