// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package llm is the boundary to the inference collaborator.
package llm

import (
	"context"

	"google.golang.org/genai"
)

// Client is a single-shot prompt-to-text inference call. Implementations are
// expected to bound their own call duration.
type Client interface {
	// Complete returns the model's text response to the prompt.
	Complete(ctx context.Context, system string, user string) (string, error)

	// CompleteJSON returns a response constrained to JSON. The schema
	// documents the expected shape; backends without schema support may
	// ignore it and rely on the prompt.
	CompleteJSON(ctx context.Context, system string, user string, schema *genai.Schema) (string, error)
}
