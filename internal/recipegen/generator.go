// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package recipegen turns natural-language requests into structured recipes
// and meal plans via the inference collaborator.
package recipegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
	"github.com/rowant-labs/Kitchly/internal/llm"
	"github.com/rowant-labs/Kitchly/internal/sanitize"
)

const defaultServings = 4

// ParseError indicates the model's output was not valid JSON. Recoverable by
// asking the user to rephrase.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("recipegen: response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IncompleteError indicates the model's output parsed but is missing required
// fields. Recoverable by asking the user to rephrase.
type IncompleteError struct {
	Missing string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("recipegen: incomplete result: missing %s", e.Missing)
}

// Generator generates recipes and meal plans.
type Generator struct {
	llm llm.Client
}

// NewGenerator returns a Generator using the given inference client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{llm: client}
}

// GenerateRecipe generates a recipe from the user's request, sanitized and
// ready to persist.
func (g *Generator) GenerateRecipe(ctx context.Context, userText string, prefs *kitchendb.Preferences) (*kitchendb.Recipe, error) {
	text, err := g.llm.CompleteJSON(ctx, llm.GenerateRecipePrompt(prefs), userText, kitchendb.RecipeSchema)
	if err != nil {
		return nil, fmt.Errorf("recipegen: generating recipe: %w", err)
	}

	var recipe kitchendb.Recipe
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &recipe); err != nil {
		return nil, &ParseError{Err: err}
	}

	recipe.Title = strings.TrimSpace(recipe.Title)
	recipe.Instructions = trimInstructions(recipe.Instructions)
	switch {
	case recipe.Title == "":
		return nil, &IncompleteError{Missing: "title"}
	case len(recipe.Ingredients) == 0:
		return nil, &IncompleteError{Missing: "ingredients"}
	case len(recipe.Instructions) == 0:
		return nil, &IncompleteError{Missing: "instructions"}
	}

	if recipe.Servings <= 0 {
		recipe.Servings = defaultServings
	}
	recipe.Ingredients, err = sanitize.Ingredients(defaultQuantities(recipe.Ingredients))
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GeneratePlan generates a meal plan from the user's request, sanitized and
// ready to persist.
func (g *Generator) GeneratePlan(ctx context.Context, userText string, prefs *kitchendb.Preferences) (*kitchendb.MealPlan, error) {
	text, err := g.llm.CompleteJSON(ctx, llm.GeneratePlanPrompt(prefs), userText, kitchendb.MealPlanSchema)
	if err != nil {
		return nil, fmt.Errorf("recipegen: generating plan: %w", err)
	}

	var plan kitchendb.MealPlan
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &plan); err != nil {
		return nil, &ParseError{Err: err}
	}

	plan.Title = strings.TrimSpace(plan.Title)
	switch {
	case plan.Title == "":
		return nil, &IncompleteError{Missing: "title"}
	case len(plan.Days) == 0:
		return nil, &IncompleteError{Missing: "days"}
	case len(plan.ConsolidatedList) == 0:
		return nil, &IncompleteError{Missing: "consolidatedList"}
	}

	plan.ConsolidatedList, err = sanitize.LineItems(defaultQuantities(plan.ConsolidatedList))
	if err != nil {
		return nil, err
	}
	if plan.RenderedText == "" {
		plan.RenderedText = kitchendb.RenderPlan(&plan)
	}
	return &plan, nil
}

// stripCodeFence removes a single fenced code block wrapping the whole text,
// with or without a language tag.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func trimInstructions(steps []string) []string {
	out := steps[:0:0]
	for _, step := range steps {
		if s := strings.TrimSpace(step); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// defaultQuantities treats a missing quantity as 1. The external ordering API
// requires every measurement to be strictly positive; negative quantities are
// left for sanitization to drop.
func defaultQuantities(items []kitchendb.Ingredient) []kitchendb.Ingredient {
	for i, item := range items {
		for j, m := range item.Measurements {
			if m.Quantity == 0 {
				items[i].Measurements[j].Quantity = 1
			}
		}
	}
	return items
}
