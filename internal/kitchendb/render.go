// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package kitchendb

import (
	"fmt"
	"strings"
)

// RenderIngredient formats an ingredient as a single line, preferring
// DisplayText over the raw name.
func RenderIngredient(ing Ingredient) string {
	name := ing.Name
	if ing.DisplayText != "" {
		name = ing.DisplayText
	}
	if len(ing.Measurements) == 0 {
		return name
	}
	parts := make([]string, len(ing.Measurements))
	for i, m := range ing.Measurements {
		parts[i] = fmt.Sprintf("%g %s", m.Quantity, m.Unit)
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(parts, ", "))
}

// RenderRecipe formats a recipe as user-visible reply text.
func RenderRecipe(r *Recipe) string {
	var b strings.Builder
	b.WriteString("**" + r.Title + "**\n")
	if r.Servings > 0 {
		fmt.Fprintf(&b, "Serves %d", r.Servings)
		if r.PrepTime != "" {
			fmt.Fprintf(&b, " · Prep %s", r.PrepTime)
		}
		if r.CookTime != "" {
			fmt.Fprintf(&b, " · Cook %s", r.CookTime)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nIngredients:\n")
	for _, ing := range r.Ingredients {
		b.WriteString("- " + RenderIngredient(ing) + "\n")
	}
	b.WriteString("\nInstructions:\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// RenderPlan formats a meal plan as user-visible reply text. The generator's
// RenderedText is preferred when present.
func RenderPlan(p *MealPlan) string {
	if p.RenderedText != "" {
		return p.RenderedText
	}
	var b strings.Builder
	b.WriteString("**" + p.Title + "**\n")
	for _, day := range p.Days {
		b.WriteString("\n" + day.Day + ":\n")
		for _, meal := range day.Meals {
			fmt.Fprintf(&b, "- %s: %s", meal.Type, meal.RecipeName)
			if meal.Description != "" {
				b.WriteString(" — " + meal.Description)
			}
			b.WriteString("\n")
		}
	}
	if len(p.ConsolidatedList) > 0 {
		b.WriteString("\nShopping list:\n")
		for _, item := range p.ConsolidatedList {
			b.WriteString("- " + RenderIngredient(item) + "\n")
		}
	}
	return b.String()
}
