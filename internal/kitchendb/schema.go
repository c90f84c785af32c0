// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package kitchendb

import "google.golang.org/genai"

var measurementsSchema = &genai.Schema{
	Type:        "array",
	Description: "A list of measurements.",
	Items: &genai.Schema{
		Type:        "object",
		Description: "A measurement of an ingredient.",
		Properties: map[string]*genai.Schema{
			"quantity": {
				Type:        "number",
				Description: "The amount of the ingredient. Must be a positive number.",
			},
			"unit": {
				Type:        "string",
				Description: "The unit of the quantity, e.g. cup, tablespoon, gram.",
			},
		},
		Required: []string{"quantity", "unit"},
	},
}

var ingredientsSchema = &genai.Schema{
	Type:        "array",
	Description: "A list of ingredients.",
	Items: &genai.Schema{
		Type:        "object",
		Description: "An ingredient.",
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        "string",
				Description: "The name of the ingredient.",
			},
			"displayText": {
				Type:        "string",
				Description: "Optional display text for the ingredient, e.g. name with preparation notes.",
			},
			"measurements": measurementsSchema,
		},
		Required: []string{"name", "measurements"},
	},
}

// RecipeSchema documents the structured output contract for recipe
// generation.
var RecipeSchema = &genai.Schema{
	Type:        "object",
	Description: "A complete recipe.",
	Required:    []string{"title", "ingredients", "instructions"},
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        "string",
			Description: "The title of the recipe.",
		},
		"ingredients": ingredientsSchema,
		"instructions": {
			Type:        "array",
			Description: "The steps to prepare the recipe, in order.",
			Items: &genai.Schema{
				Type: "string",
			},
		},
		"servings": {
			Type:        "integer",
			Description: "The number of servings the recipe makes.",
		},
		"prepTime": {
			Type:        "string",
			Description: "The preparation time, e.g. 15 minutes.",
		},
		"cookTime": {
			Type:        "string",
			Description: "The cooking time, e.g. 30 minutes.",
		},
		"cuisine": {
			Type:        "string",
			Description: "The cuisine of the recipe.",
		},
		"dietaryTags": {
			Type:        "array",
			Description: "Dietary tags such as vegetarian or gluten-free.",
			Items: &genai.Schema{
				Type: "string",
			},
		},
	},
}

// MealPlanSchema documents the structured output contract for meal plan
// generation.
var MealPlanSchema = &genai.Schema{
	Type:        "object",
	Description: "A multi-day meal plan.",
	Required:    []string{"title", "days", "consolidatedList"},
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        "string",
			Description: "The title of the meal plan.",
		},
		"days": {
			Type:        "array",
			Description: "The days of the plan.",
			Items: &genai.Schema{
				Type:        "object",
				Description: "A single day of the plan.",
				Properties: map[string]*genai.Schema{
					"day": {
						Type:        "string",
						Description: "The label of the day, e.g. Day 1.",
					},
					"meals": {
						Type:        "array",
						Description: "The meals of the day.",
						Items: &genai.Schema{
							Type:        "object",
							Description: "A meal of the day.",
							Properties: map[string]*genai.Schema{
								"type": {
									Type:        "string",
									Description: "One of breakfast, lunch, dinner, snack.",
								},
								"recipeName": {
									Type:        "string",
									Description: "The name of the recipe for the meal.",
								},
								"description": {
									Type:        "string",
									Description: "A short description of the meal.",
								},
							},
							Required: []string{"type", "recipeName"},
						},
					},
				},
				Required: []string{"day", "meals"},
			},
		},
		"consolidatedList": ingredientsSchema,
	},
}
