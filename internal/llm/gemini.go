// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// NewGemini returns a Gemini model.
func NewGemini(genAI *genai.Client, model string) *Gemini {
	return &Gemini{
		genAI: genAI,
		model: model,
	}
}

// Gemini answers with the Gemini API. Each candidate is one choice.
type Gemini struct {
	genAI *genai.Client
	model string
}

func (g *Gemini) Complete(ctx context.Context, systemPrompt string, userMessage string) ([]string, error) {
	res, err := g.genAI.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(userMessage, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleModel),
	})
	if err != nil {
		return nil, fmt.Errorf("llm: calling GenerateContent: %w", err)
	}

	contents := make([]string, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		if c.Content == nil {
			contents = append(contents, "")
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		contents = append(contents, sb.String())
	}
	return contents, nil
}
