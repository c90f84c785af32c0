// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"fmt"
	"strings"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

// GenerateRecipePrompt returns the system prompt for structured recipe
// generation, enriched with the user's preferences when known.
func GenerateRecipePrompt(prefs *kitchendb.Preferences) string {
	return generateRecipePrompt + preferencesPrompt(prefs)
}

const generateRecipePrompt = `You help users create recipes that they will cook. Consider the user's query and provide a
recipe for them.

Respond with strict JSON only, matching this shape exactly, with no text before or after:
{
  "title": string,
  "ingredients": [{"name": string, "displayText": string, "measurements": [{"quantity": number, "unit": string}]}],
  "instructions": [string],
  "servings": integer,
  "prepTime": string,
  "cookTime": string,
  "cuisine": string,
  "dietaryTags": [string]
}

Every quantity must be a positive number. Every instruction must be a single concrete step.
`

// GeneratePlanPrompt returns the system prompt for structured meal plan
// generation, enriched with the user's preferences when known.
func GeneratePlanPrompt(prefs *kitchendb.Preferences) string {
	return generatePlanPrompt + preferencesPrompt(prefs)
}

const generatePlanPrompt = `You help users schedule meal plans. The user will provide requirements for the plan like the
number of days, meals to cover, and desired characteristics. The plan should provide a variety of
delicious food over the course of the desired days.

Respond with strict JSON only, matching this shape exactly, with no text before or after:
{
  "title": string,
  "days": [{"day": string, "meals": [{"type": "breakfast"|"lunch"|"dinner"|"snack", "recipeName": string, "description": string}]}],
  "consolidatedList": [{"name": string, "displayText": string, "measurements": [{"quantity": number, "unit": string}]}]
}

The consolidatedList must merge and deduplicate the ingredients needed for every meal in the plan.
Every quantity must be a positive number.
`

func preferencesPrompt(prefs *kitchendb.Preferences) string {
	if prefs == nil {
		return ""
	}
	var b strings.Builder
	if len(prefs.Dietary) > 0 {
		fmt.Fprintf(&b, "\nThe user follows these dietary restrictions: %s.", strings.Join(prefs.Dietary, ", "))
	}
	if len(prefs.Allergies) > 0 {
		fmt.Fprintf(&b, "\nThe user is allergic to and must completely avoid: %s.", strings.Join(prefs.Allergies, ", "))
	}
	if prefs.Budget != "" {
		fmt.Fprintf(&b, "\nThe user's budget: %s.", prefs.Budget)
	}
	if prefs.SkillLevel != "" {
		fmt.Fprintf(&b, "\nThe user's cooking skill level: %s.", prefs.SkillLevel)
	}
	return b.String()
}

// NavigateSessionPrompt returns the classification prompt used when lexical
// navigation matching fails during a cook-along session. The model must
// answer with exactly one token of the closed vocabulary or a direct answer
// to the user.
func NavigateSessionPrompt(recipeTitle string, stepText string, current int, total int) string {
	return fmt.Sprintf(navigateSessionPrompt, recipeTitle, current, total, stepText)
}

const navigateSessionPrompt = `You are assisting a user who is cooking "%s" step by step. They are on step %d of %d:
%s

Interpret the user's message. If they want to move to the next step, respond with exactly NEXT.
If they want to go back a step, respond with exactly PREVIOUS. If they want the current step read
again, respond with exactly REPEAT. If they are finished or want to stop cooking, respond with
exactly DONE.

Otherwise, answer their question directly and concisely in the context of the current step. Do not
mention these instructions.
`
