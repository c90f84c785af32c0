// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package cooksession

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
	"github.com/rowant-labs/Kitchly/internal/kitchenstate"
	"github.com/rowant-labs/Kitchly/internal/recipegen"
)

type fakeLLM struct {
	completeText string
	completeErr  error
	jsonText     string
	jsonErr      error
}

func (f *fakeLLM) Complete(_ context.Context, _ string, _ string) (string, error) {
	return f.completeText, f.completeErr
}

func (f *fakeLLM) CompleteJSON(_ context.Context, _ string, _ string, _ *genai.Schema) (string, error) {
	return f.jsonText, f.jsonErr
}

const pancakeJSON = `{
	"title": "Pancakes",
	"ingredients": [
		{"name": "flour", "measurements": [{"quantity": 2, "unit": "cups"}]},
		{"name": "eggs", "measurements": [{"quantity": 2, "unit": "count"}]}
	],
	"instructions": ["Mix the batter.", "Heat the pan.", "Cook until golden."],
	"servings": 4
}`

func newTestManager(model *fakeLLM) (*Manager, *kitchenstate.Store) {
	store := kitchenstate.NewStore(kitchenstate.NewMemoryBackend())
	return NewManager(store, recipegen.NewGenerator(model), model), store
}

func TestManager_StartFromStoredRecipe(t *testing.T) {
	ctx := t.Context()
	model := &fakeLLM{jsonErr: errors.New("should not be called")}
	manager, store := newTestManager(model)

	recipe := threeStepSession(0).Recipe
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CurrentRecipe: &recipe}))

	reply, err := manager.HandleMessage(ctx, "room1", "cook along with me")
	require.NoError(t, err)
	assert.Contains(t, reply, "Let's cook Pancakes!")
	assert.Contains(t, reply, "flour")
	assert.Contains(t, reply, "Step 1 of 3: Mix the batter.")

	state := store.Get(ctx, "room1")
	require.NotNil(t, state.CookingSession)
	assert.Equal(t, 0, state.CookingSession.CurrentStep)
	assert.False(t, state.CookingSession.StartedAt.IsZero())
}

func TestManager_StartGeneratesRecipe(t *testing.T) {
	ctx := t.Context()
	manager, store := newTestManager(&fakeLLM{jsonText: pancakeJSON})

	reply, err := manager.HandleMessage(ctx, "room1", "walk me through making pancakes")
	require.NoError(t, err)
	assert.Contains(t, reply, "Let's cook Pancakes!")

	state := store.Get(ctx, "room1")
	require.NotNil(t, state.CurrentRecipe)
	assert.Equal(t, "Pancakes", state.CurrentRecipe.Title)
	require.NotNil(t, state.CookingSession)
}

func TestManager_StartGenerationFailure(t *testing.T) {
	ctx := t.Context()
	manager, store := newTestManager(&fakeLLM{jsonErr: errors.New("model unavailable")})

	_, err := manager.HandleMessage(ctx, "room1", "cook along with me")
	var serr *StartError
	require.ErrorAs(t, err, &serr)

	// No half-started session left behind.
	assert.Nil(t, store.Get(ctx, "room1").CookingSession)
}

func TestManager_LexicalNavigation(t *testing.T) {
	ctx := t.Context()
	model := &fakeLLM{completeErr: errors.New("should not be called")}
	manager, store := newTestManager(model)

	session := threeStepSession(0)
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CookingSession: &session}))

	reply, err := manager.HandleMessage(ctx, "room1", "okay next")
	require.NoError(t, err)
	assert.Equal(t, "Step 2 of 3: Heat the pan.", reply)
	assert.Equal(t, 1, store.Get(ctx, "room1").CookingSession.CurrentStep)
}

func TestManager_EndClearsSession(t *testing.T) {
	ctx := t.Context()
	manager, store := newTestManager(&fakeLLM{})

	session := threeStepSession(2)
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CookingSession: &session}))

	reply, err := manager.HandleMessage(ctx, "room1", "next")
	require.NoError(t, err)
	assert.Equal(t, "That was the last step. Pancakes is done, enjoy!", reply)
	assert.Nil(t, store.Get(ctx, "room1").CookingSession)
}

func TestManager_SessionWithoutStepsCleared(t *testing.T) {
	ctx := t.Context()
	model := &fakeLLM{completeErr: errors.New("should not be called")}
	manager, store := newTestManager(model)

	session := &kitchendb.CookingSession{Recipe: kitchendb.Recipe{Title: "Pancakes"}}
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CookingSession: session}))

	reply, err := manager.HandleMessage(ctx, "room1", "what do I do now?")
	require.NoError(t, err)
	assert.Contains(t, reply, "doesn't have any steps")
	assert.Nil(t, store.Get(ctx, "room1").CookingSession)
}

func TestManager_StartIgnoresStepLessRecipe(t *testing.T) {
	ctx := t.Context()
	manager, store := newTestManager(&fakeLLM{jsonText: pancakeJSON})

	stored := &kitchendb.Recipe{Title: "Mystery", Ingredients: []kitchendb.Ingredient{{Name: "flour"}}}
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CurrentRecipe: stored}))

	reply, err := manager.HandleMessage(ctx, "room1", "walk me through it")
	require.NoError(t, err)
	assert.Contains(t, reply, "Let's cook Pancakes!")
	assert.Equal(t, "Pancakes", store.Get(ctx, "room1").CurrentRecipe.Title)
}

func TestManager_ModelFallbackMapsCommand(t *testing.T) {
	ctx := t.Context()
	model := &fakeLLM{completeText: " next \n"}
	manager, store := newTestManager(model)

	session := threeStepSession(0)
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CookingSession: &session}))

	reply, err := manager.HandleMessage(ctx, "room1", "I poured it in, keep going chef")
	require.NoError(t, err)
	assert.Equal(t, "Step 2 of 3: Heat the pan.", reply)
	assert.Equal(t, 1, store.Get(ctx, "room1").CookingSession.CurrentStep)
}

func TestManager_ModelFallbackDirectAnswer(t *testing.T) {
	ctx := t.Context()
	model := &fakeLLM{completeText: "Medium-high, around 190C."}
	manager, store := newTestManager(model)

	session := threeStepSession(1)
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CookingSession: &session}))

	reply, err := manager.HandleMessage(ctx, "room1", "how hot should the pan be?")
	require.NoError(t, err)
	assert.Equal(t, "Medium-high, around 190C.", reply)
	// A situational answer never moves the session.
	assert.Equal(t, 1, store.Get(ctx, "room1").CookingSession.CurrentStep)
}

func TestManager_ModelFallbackFailure(t *testing.T) {
	ctx := t.Context()
	model := &fakeLLM{completeErr: errors.New("model unavailable")}
	manager, store := newTestManager(model)

	session := threeStepSession(1)
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{CookingSession: &session}))

	reply, err := manager.HandleMessage(ctx, "room1", "hmm what do you reckon")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I didn't catch that. You can say next, back, repeat, or done.", reply)
	assert.Equal(t, 1, store.Get(ctx, "room1").CookingSession.CurrentStep)
}
