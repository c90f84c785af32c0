// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package cooksession

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

func threeStepSession(step int) kitchendb.CookingSession {
	return kitchendb.CookingSession{
		Recipe: kitchendb.Recipe{
			Title: "Pancakes",
			Ingredients: []kitchendb.Ingredient{
				{Name: "flour", Measurements: []kitchendb.Measurement{{Quantity: 2, Unit: "cups"}}},
				{Name: "eggs", Measurements: []kitchendb.Measurement{{Quantity: 2, Unit: "count"}}},
			},
			Instructions: []string{"Mix the batter.", "Heat the pan.", "Cook until golden."},
			Servings:     4,
		},
		CurrentStep: step,
	}
}

func TestAdvance_Next(t *testing.T) {
	out := Advance(threeStepSession(0), CommandNext)
	require.False(t, out.Ended)
	assert.True(t, out.Changed)
	assert.Equal(t, 1, out.Session.CurrentStep)
	assert.Equal(t, "Step 2 of 3: Heat the pan.", out.Reply)
}

func TestAdvance_NextAtLastStepEnds(t *testing.T) {
	out := Advance(threeStepSession(2), CommandNext)
	require.True(t, out.Ended)
	assert.Equal(t, "That was the last step. Pancakes is done, enjoy!", out.Reply)
}

func TestAdvance_PreviousFloorsAtFirstStep(t *testing.T) {
	out := Advance(threeStepSession(0), CommandPrevious)
	assert.Equal(t, 0, out.Session.CurrentStep)
	assert.Equal(t, "Step 1 of 3: Mix the batter.", out.Reply)

	out = Advance(threeStepSession(2), CommandPrevious)
	assert.Equal(t, 1, out.Session.CurrentStep)
	assert.Equal(t, "Step 2 of 3: Heat the pan.", out.Reply)
}

func TestAdvance_RepeatDoesNotChangeState(t *testing.T) {
	out := Advance(threeStepSession(1), CommandRepeat)
	assert.False(t, out.Changed)
	assert.Equal(t, 1, out.Session.CurrentStep)
	assert.Equal(t, "Step 2 of 3: Heat the pan.", out.Reply)

	// Repeating again says the exact same thing.
	again := Advance(out.Session, CommandRepeat)
	assert.False(t, again.Changed)
	assert.Equal(t, out.Reply, again.Reply)
}

func TestAdvance_DoneEndsAnywhere(t *testing.T) {
	out := Advance(threeStepSession(1), CommandDone)
	require.True(t, out.Ended)
	assert.Equal(t, "Okay, stopping here. You can pick Pancakes back up anytime.", out.Reply)
}

func TestAdvance_StartResetsToFirstStep(t *testing.T) {
	session := threeStepSession(2)
	session.Paused = true
	out := Advance(session, CommandStart)
	assert.True(t, out.Changed)
	assert.Equal(t, 0, out.Session.CurrentStep)
	assert.False(t, out.Session.Paused)
	assert.Equal(t, "Starting from the top.\nStep 1 of 3: Mix the batter.", out.Reply)
}

func TestAdvance_Status(t *testing.T) {
	out := Advance(threeStepSession(1), CommandStatus)
	assert.False(t, out.Changed)
	assert.Equal(t, "You're on step 2 of 3 (67%).", out.Reply)
}

func TestAdvance_Ingredients(t *testing.T) {
	out := Advance(threeStepSession(1), CommandIngredients)
	assert.False(t, out.Changed)
	assert.Contains(t, out.Reply, "For Pancakes you'll need:")
	assert.Contains(t, out.Reply, "flour")
	assert.Contains(t, out.Reply, "eggs")
}

func TestAdvance_NoInstructionsEndsSession(t *testing.T) {
	// Stored state whose recipe lost its steps must end cleanly, not index
	// out of range.
	session := kitchendb.CookingSession{Recipe: kitchendb.Recipe{Title: "Pancakes"}}
	for _, cmd := range []Command{CommandNone, CommandRepeat, CommandNext, CommandPrevious, CommandStatus, CommandStart} {
		out := Advance(session, cmd)
		require.True(t, out.Ended)
		assert.Contains(t, out.Reply, "doesn't have any steps")
	}
}

func TestAdvance_ClampsOutOfRangeStep(t *testing.T) {
	// Tampered stored state must not index out of bounds.
	out := Advance(threeStepSession(99), CommandRepeat)
	assert.Equal(t, 2, out.Session.CurrentStep)
	assert.Equal(t, "Step 3 of 3: Cook until golden.", out.Reply)

	out = Advance(threeStepSession(-5), CommandRepeat)
	assert.Equal(t, 0, out.Session.CurrentStep)
	assert.Equal(t, "Step 1 of 3: Mix the batter.", out.Reply)
}

func TestAdvance_FullWalkthrough(t *testing.T) {
	session := threeStepSession(0)

	out := Advance(session, CommandNext)
	require.True(t, out.Changed)
	session = out.Session

	out = Advance(session, CommandNext)
	require.True(t, out.Changed)
	session = out.Session
	assert.Equal(t, 2, session.CurrentStep)

	out = Advance(session, CommandNext)
	assert.True(t, out.Ended)
}
