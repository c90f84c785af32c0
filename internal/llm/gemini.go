// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini is a Client backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini returns a Gemini client using the given model.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{
		client: client,
		model:  model,
	}
}

func (g *Gemini) Complete(ctx context.Context, system string, user string) (string, error) {
	return g.generate(ctx, system, user, nil)
}

func (g *Gemini) CompleteJSON(ctx context.Context, system string, user string, schema *genai.Schema) (string, error) {
	return g.generate(ctx, system, user, &generateOpts{schema: schema})
}

type generateOpts struct {
	schema *genai.Schema
}

func (g *Gemini) generate(ctx context.Context, system string, user string, opts *generateOpts) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleModel),
	}
	if opts != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = opts.schema
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("llm: generating content: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("llm: unexpected response from generate ai: %v", res)
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
