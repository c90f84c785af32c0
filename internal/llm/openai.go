// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
	"google.golang.org/genai"
)

// OpenAI is a Client backed by the OpenAI chat completions API. JSON
// responses use json_object mode; the genai schema is conveyed through the
// prompt only.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns an OpenAI client using the given model.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	return &OpenAI{
		client: client,
		model:  model,
	}
}

func (o *OpenAI) Complete(ctx context.Context, system string, user string) (string, error) {
	return o.complete(ctx, system, user, false)
}

func (o *OpenAI) CompleteJSON(ctx context.Context, system string, user string, _ *genai.Schema) (string, error) {
	return o.complete(ctx, system, user, true)
}

func (o *OpenAI) complete(ctx context.Context, system string, user string, jsonMode bool) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	res, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm: creating chat completion: %w", err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("llm: unexpected response from chat completion: %v", res)
	}
	return res.Choices[0].Message.Content, nil
}
