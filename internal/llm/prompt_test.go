// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

func TestGenerateRecipePrompt_Preferences(t *testing.T) {
	prompt := GenerateRecipePrompt(&kitchendb.Preferences{
		Dietary:    []string{"vegetarian"},
		Allergies:  []string{"peanuts", "shellfish"},
		Budget:     "under $30",
		SkillLevel: "beginner",
	})

	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, "peanuts, shellfish")
	assert.Contains(t, prompt, "under $30")
	assert.Contains(t, prompt, "beginner")
}

func TestGenerateRecipePrompt_NilPreferences(t *testing.T) {
	assert.Equal(t, generateRecipePrompt, GenerateRecipePrompt(nil))
}

func TestNavigateSessionPrompt(t *testing.T) {
	prompt := NavigateSessionPrompt("Pancakes", "Heat the pan.", 2, 3)

	assert.Contains(t, prompt, `"Pancakes"`)
	assert.Contains(t, prompt, "step 2 of 3")
	assert.Contains(t, prompt, "Heat the pan.")
}
