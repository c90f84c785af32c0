// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package cooksession

import (
	"fmt"
	"math"
	"strings"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

// Outcome is the result of applying a command to a session.
type Outcome struct {
	// Session is the session after the transition. Meaningless when Ended.
	Session kitchendb.CookingSession

	// Reply is the user-visible text for the transition.
	Reply string

	// Ended reports that the session is over and must be cleared.
	Ended bool

	// Changed reports that the session state differs from the input and must
	// be persisted.
	Changed bool
}

const noStepsReply = "That recipe doesn't have any steps I can guide you through. Ask me for a new recipe and we'll start fresh."

// Advance applies a navigation command to a session. Pure: the input session
// is not mutated. Tampered stored state never propagates out of bounds: a
// session without instructions ends immediately and the step index is clamped
// into range before any command runs.
func Advance(session kitchendb.CookingSession, cmd Command) Outcome {
	total := len(session.Recipe.Instructions)
	if total == 0 {
		return Outcome{Reply: noStepsReply, Ended: true}
	}
	session.CurrentStep = clampStep(session.CurrentStep, total)

	switch cmd {
	case CommandNext:
		if session.CurrentStep+1 == total {
			return Outcome{
				Reply: fmt.Sprintf("That was the last step. %s is done, enjoy!", session.Recipe.Title),
				Ended: true,
			}
		}
		session.CurrentStep++
		return Outcome{Session: session, Reply: stepText(&session), Changed: true}

	case CommandPrevious:
		if session.CurrentStep > 0 {
			session.CurrentStep--
		}
		return Outcome{Session: session, Reply: stepText(&session), Changed: true}

	case CommandRepeat:
		return Outcome{Session: session, Reply: stepText(&session)}

	case CommandDone:
		return Outcome{
			Reply: fmt.Sprintf("Okay, stopping here. You can pick %s back up anytime.", session.Recipe.Title),
			Ended: true,
		}

	case CommandStart:
		session.CurrentStep = 0
		session.Paused = false
		return Outcome{
			Session: session,
			Reply:   "Starting from the top.\n" + stepText(&session),
			Changed: true,
		}

	case CommandStatus:
		current := session.CurrentStep + 1
		percent := int(math.Round(float64(current) / float64(total) * 100))
		reply := fmt.Sprintf("You're on step %d of %d (%d%%).", current, total, percent)
		if session.Paused {
			reply += " The session is paused."
		}
		return Outcome{Session: session, Reply: reply}

	case CommandIngredients:
		return Outcome{
			Session: session,
			Reply:   fmt.Sprintf("For %s you'll need:\n%s", session.Recipe.Title, ingredientList(&session.Recipe)),
		}
	}

	return Outcome{Session: session, Reply: stepText(&session)}
}

func clampStep(step int, total int) int {
	if step < 0 {
		return 0
	}
	if step >= total {
		return total - 1
	}
	return step
}

func stepText(session *kitchendb.CookingSession) string {
	total := len(session.Recipe.Instructions)
	return fmt.Sprintf("Step %d of %d: %s", session.CurrentStep+1, total, session.Recipe.Instructions[session.CurrentStep])
}

func ingredientList(recipe *kitchendb.Recipe) string {
	lines := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		lines[i] = "- " + kitchendb.RenderIngredient(ing)
	}
	return strings.Join(lines, "\n")
}
