// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package kitchenstate stores per-conversation kitchen context.
package kitchenstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

// ErrNotFound is returned by a Backend when no state exists for a
// conversation.
var ErrNotFound = errors.New("kitchenstate: not found")

// Backend is the key-value collaborator holding one KitchenState per
// conversation identifier.
type Backend interface {
	GetState(ctx context.Context, conversationID string) (*kitchendb.KitchenState, error)
	SetState(ctx context.Context, conversationID string, state *kitchendb.KitchenState) error
}

// Patch is a partial update to a KitchenState. Nil or zero fields are left
// unchanged; EndCookingSession and ClearOrderLink explicitly clear theirs.
type Patch struct {
	CurrentRecipe     *kitchendb.Recipe
	CurrentMealPlan   *kitchendb.MealPlan
	CookingSession    *kitchendb.CookingSession
	EndCookingSession bool
	LastOrderLink     string
	ClearOrderLink    bool
	Preferences       *kitchendb.Preferences
}

// Store reads and merges KitchenState records. Merges for the same
// conversation are serialized within the process.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore returns a Store backed by the given Backend.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   map[string]*sync.Mutex{},
	}
}

// Get returns the KitchenState for a conversation. A missing record or a
// backend read error is treated as a fresh conversation and returns an empty
// state, never an error.
func (s *Store) Get(ctx context.Context, conversationID string) *kitchendb.KitchenState {
	state, err := s.backend.GetState(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.ErrorContext(ctx, "kitchenstate: reading state, treating as empty",
				"conversation", conversationID, "error", err)
		}
		return &kitchendb.KitchenState{}
	}
	if state == nil {
		return &kitchendb.KitchenState{}
	}
	return state
}

// Merge applies a patch to the stored state with read-merge-write semantics.
// Each set field of the patch fully replaces the corresponding stored field;
// there is no finer-grained merge.
func (s *Store) Merge(ctx context.Context, conversationID string, patch Patch) error {
	lock := s.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	state := s.Get(ctx, conversationID)
	if patch.CurrentRecipe != nil {
		state.CurrentRecipe = patch.CurrentRecipe
	}
	if patch.CurrentMealPlan != nil {
		state.CurrentMealPlan = patch.CurrentMealPlan
	}
	if patch.CookingSession != nil {
		state.CookingSession = patch.CookingSession
	}
	if patch.EndCookingSession {
		state.CookingSession = nil
	}
	if patch.LastOrderLink != "" {
		state.LastOrderLink = patch.LastOrderLink
	}
	if patch.ClearOrderLink {
		state.LastOrderLink = ""
	}
	if patch.Preferences != nil {
		state.Preferences = patch.Preferences
	}

	if err := s.backend.SetState(ctx, conversationID, state); err != nil {
		return fmt.Errorf("kitchenstate: writing state: %w", err)
	}
	return nil
}

func (s *Store) conversationLock(conversationID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock := s.locks[conversationID]
	if lock == nil {
		lock = &sync.Mutex{}
		s.locks[conversationID] = lock
	}
	return lock
}
