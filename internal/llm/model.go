// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package llm provides the language models used to answer messages the
// cookbook tools cannot.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"

	"github.com/curioswitch/cookchat/assistant/internal/config"
)

var errUnknownProvider = errors.New("llm: unknown model provider")

// Model completes a single exchange of a system prompt and a user message.
type Model interface {
	// Complete returns the content of each choice the model generated, in order.
	Complete(ctx context.Context, systemPrompt string, userMessage string) ([]string, error)
}

// New returns the Model configured by conf. project is the Google Cloud project
// used for the Gemini API.
func New(ctx context.Context, conf config.Model, project string) (Model, error) {
	switch conf.Provider {
	case config.ProviderOpenAI, "":
		var opts []option.RequestOption
		if conf.Azure.Endpoint != "" {
			opts = append(opts,
				azure.WithEndpoint(conf.Azure.Endpoint, conf.Azure.APIVersion),
				azure.WithAPIKey(os.Getenv("AZURE_OPENAI_API_KEY")),
			)
		}
		return NewOpenAI(conf.Name, opts...), nil
	case config.ProviderGoogle:
		genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			Project: project,
		})
		if err != nil {
			return nil, fmt.Errorf("llm: creating genai client: %w", err)
		}
		return NewGemini(genAI, conf.Name), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownProvider, conf.Provider)
}

// Canned is a Model that always answers with the same text. It is used when no
// model is available.
type Canned string

func (c Canned) Complete(context.Context, string, string) ([]string, error) {
	return []string{string(c)}, nil
}
