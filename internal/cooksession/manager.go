// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package cooksession

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
	"github.com/rowant-labs/Kitchly/internal/kitchenstate"
	"github.com/rowant-labs/Kitchly/internal/llm"
	"github.com/rowant-labs/Kitchly/internal/recipegen"
)

// StartError indicates a session could not be started because no recipe was
// available or derivable from the request.
type StartError struct {
	Err error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("cooksession: could not start a cooking session: %v", e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// Manager owns the active cooking session for each conversation.
type Manager struct {
	store     *kitchenstate.Store
	generator *recipegen.Generator
	llm       llm.Client
}

// NewManager returns a Manager.
func NewManager(store *kitchenstate.Store, generator *recipegen.Generator, client llm.Client) *Manager {
	return &Manager{
		store:     store,
		generator: generator,
		llm:       client,
	}
}

// HandleMessage advances the conversation's cooking session with one user
// utterance and returns the reply text.
func (m *Manager) HandleMessage(ctx context.Context, conversationID string, utterance string) (string, error) {
	state := m.store.Get(ctx, conversationID)
	if state.CookingSession == nil {
		return m.startSession(ctx, conversationID, state, utterance)
	}

	session := *state.CookingSession
	cmd := CommandNone
	// A session without instructions cannot be navigated; skip straight to
	// Advance, which ends it.
	if len(session.Recipe.Instructions) > 0 {
		cmd = Classify(utterance)
		if cmd == CommandNone {
			mapped, direct, err := m.classifyWithModel(ctx, &session, utterance)
			if err != nil {
				slog.WarnContext(ctx, "cooksession: model classification failed",
					"conversation", conversationID, "error", err)
				return "Sorry, I didn't catch that. You can say next, back, repeat, or done.", nil
			}
			if direct != "" {
				// A situational answer, not a navigation command. No state change.
				return direct, nil
			}
			cmd = mapped
		}
	}

	outcome := Advance(session, cmd)
	if outcome.Ended {
		if err := m.store.Merge(ctx, conversationID, kitchenstate.Patch{EndCookingSession: true}); err != nil {
			return "", err
		}
		return outcome.Reply, nil
	}
	if outcome.Changed {
		updated := outcome.Session
		if err := m.store.Merge(ctx, conversationID, kitchenstate.Patch{CookingSession: &updated}); err != nil {
			return "", err
		}
	}
	return outcome.Reply, nil
}

// startSession creates a session from the conversation's current recipe, or
// generates a fresh one from the utterance. A stored recipe without steps is
// treated as absent. Generation failure leaves the conversation with no
// session.
func (m *Manager) startSession(ctx context.Context, conversationID string, state *kitchendb.KitchenState, utterance string) (string, error) {
	patch := kitchenstate.Patch{}
	recipe := state.CurrentRecipe
	if recipe == nil || len(recipe.Instructions) == 0 {
		generated, err := m.generator.GenerateRecipe(ctx, utterance, state.Preferences)
		if err != nil {
			return "", &StartError{Err: err}
		}
		recipe = generated
		patch.CurrentRecipe = recipe
	}

	session := &kitchendb.CookingSession{
		Recipe:      *recipe,
		CurrentStep: 0,
		StartedAt:   time.Now(),
	}
	patch.CookingSession = session
	if err := m.store.Merge(ctx, conversationID, patch); err != nil {
		return "", err
	}

	return fmt.Sprintf("Let's cook %s!\n\nYou'll need:\n%s\n\n%s",
		recipe.Title, ingredientList(recipe), stepText(session)), nil
}

// classifyWithModel asks the inference collaborator to interpret an
// ambiguous utterance. A closed-vocabulary token maps to a command; anything
// else is returned verbatim as a direct answer.
func (m *Manager) classifyWithModel(ctx context.Context, session *kitchendb.CookingSession, utterance string) (Command, string, error) {
	step := session.Recipe.Instructions[clampStep(session.CurrentStep, len(session.Recipe.Instructions))]
	prompt := llm.NavigateSessionPrompt(session.Recipe.Title, step,
		session.CurrentStep+1, len(session.Recipe.Instructions))
	text, err := m.llm.Complete(ctx, prompt, utterance)
	if err != nil {
		return CommandNone, "", fmt.Errorf("cooksession: classifying utterance: %w", err)
	}

	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "NEXT":
		return CommandNext, "", nil
	case "PREVIOUS":
		return CommandPrevious, "", nil
	case "REPEAT":
		return CommandRepeat, "", nil
	case "DONE":
		return CommandDone, "", nil
	}
	return CommandNone, text, nil
}
