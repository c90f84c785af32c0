// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package kitchendb

import "time"

// Measurement is a quantity of an ingredient in a given unit.
type Measurement struct {
	// Quantity is the amount of the ingredient. Always positive after
	// sanitization.
	Quantity float64 `firestore:"quantity" json:"quantity"`

	// Unit is the unit of the quantity, e.g. "cup".
	Unit string `firestore:"unit" json:"unit"`
}

// Ingredient is an ingredient of a recipe or a line item of a shopping list.
type Ingredient struct {
	// Name is the name of the ingredient.
	Name string `firestore:"name" json:"name"`

	// DisplayText is optional text to show in place of the name.
	DisplayText string `firestore:"displayText,omitempty" json:"displayText,omitempty"`

	// Measurements are the measurements of the ingredient. May be empty for
	// unmeasured items such as "salt to taste".
	Measurements []Measurement `firestore:"measurements" json:"measurements"`
}

// Recipe is a recipe generated for a conversation.
type Recipe struct {
	// Title is the title of the recipe.
	Title string `firestore:"title" json:"title"`

	// Ingredients are the ingredients of the recipe.
	Ingredients []Ingredient `firestore:"ingredients" json:"ingredients"`

	// Instructions are the steps to prepare the recipe, in order.
	Instructions []string `firestore:"instructions" json:"instructions"`

	// Servings is the number of servings the recipe makes.
	Servings int `firestore:"servings" json:"servings"`

	// PrepTime is the preparation time as free-form text.
	PrepTime string `firestore:"prepTime,omitempty" json:"prepTime,omitempty"`

	// CookTime is the cooking time as free-form text.
	CookTime string `firestore:"cookTime,omitempty" json:"cookTime,omitempty"`

	// Cuisine is the cuisine of the recipe.
	Cuisine string `firestore:"cuisine,omitempty" json:"cuisine,omitempty"`

	// DietaryTags are dietary tags such as "vegetarian" or "gluten-free".
	DietaryTags []string `firestore:"dietaryTags,omitempty" json:"dietaryTags,omitempty"`
}

// MealType is the type of a meal within a day of a meal plan.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Meal is a single meal within a day of a meal plan.
type Meal struct {
	// Type is the type of the meal.
	Type MealType `firestore:"type" json:"type"`

	// RecipeName is the name of the recipe for the meal.
	RecipeName string `firestore:"recipeName" json:"recipeName"`

	// Description is an optional description of the meal.
	Description string `firestore:"description,omitempty" json:"description,omitempty"`
}

// MealPlanDay is a single day of a meal plan.
type MealPlanDay struct {
	// Day is the label of the day, e.g. "Day 1" or "Monday".
	Day string `firestore:"day" json:"day"`

	// Meals are the meals of the day.
	Meals []Meal `firestore:"meals" json:"meals"`
}

// MealPlan is a multi-day meal plan with a consolidated shopping list.
type MealPlan struct {
	// Title is the title of the plan.
	Title string `firestore:"title" json:"title"`

	// Days are the days of the plan.
	Days []MealPlanDay `firestore:"days" json:"days"`

	// ConsolidatedList is the merged, deduplicated ingredient list spanning
	// all meals in the plan.
	ConsolidatedList []Ingredient `firestore:"consolidatedList" json:"consolidatedList"`

	// RenderedText is the user-visible text of the plan.
	RenderedText string `firestore:"renderedText" json:"renderedText"`
}

// CookingSession tracks an active cook-along through a recipe.
type CookingSession struct {
	// Recipe is a snapshot of the recipe taken when the session started.
	Recipe Recipe `firestore:"recipe" json:"recipe"`

	// CurrentStep is the index of the current instruction, starting from 0.
	CurrentStep int `firestore:"currentStep" json:"currentStep"`

	// StartedAt is the time the session was started.
	StartedAt time.Time `firestore:"startedAt" json:"startedAt"`

	// Paused indicates whether the session is paused.
	Paused bool `firestore:"paused" json:"paused"`
}

// Preferences are a user's cooking preferences for a conversation.
type Preferences struct {
	// Dietary are dietary restrictions, e.g. "vegetarian".
	Dietary []string `firestore:"dietary,omitempty" json:"dietary,omitempty"`

	// Allergies are ingredients to avoid entirely.
	Allergies []string `firestore:"allergies,omitempty" json:"allergies,omitempty"`

	// Budget is a free-form budget preference.
	Budget string `firestore:"budget,omitempty" json:"budget,omitempty"`

	// SkillLevel is a free-form cooking skill level.
	SkillLevel string `firestore:"skillLevel,omitempty" json:"skillLevel,omitempty"`
}

// KitchenState is the per-conversation kitchen context. One KitchenState is
// stored per conversation identifier.
type KitchenState struct {
	// CurrentRecipe is the most recently generated recipe, if any.
	CurrentRecipe *Recipe `firestore:"currentRecipe,omitempty" json:"currentRecipe,omitempty"`

	// CurrentMealPlan is the most recently generated meal plan, if any.
	CurrentMealPlan *MealPlan `firestore:"currentMealPlan,omitempty" json:"currentMealPlan,omitempty"`

	// CookingSession is the active cook-along session, if any.
	CookingSession *CookingSession `firestore:"cookingSession,omitempty" json:"cookingSession,omitempty"`

	// LastOrderLink is the most recently generated grocery order link, if any.
	LastOrderLink string `firestore:"lastOrderLink,omitempty" json:"lastOrderLink,omitempty"`

	// Preferences are the user's cooking preferences, if known.
	Preferences *Preferences `firestore:"preferences,omitempty" json:"preferences,omitempty"`
}
