// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package kitchenstate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

// MemoryBackend is an in-memory Backend for tests and local development.
// States are stored as JSON so callers never share a live reference.
type MemoryBackend struct {
	mu     sync.Mutex
	states map[string][]byte

	// Err, when set, is returned by every operation.
	Err error
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{states: map[string][]byte{}}
}

func (b *MemoryBackend) GetState(_ context.Context, conversationID string) (*kitchendb.KitchenState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return nil, b.Err
	}
	data, ok := b.states[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	var state kitchendb.KitchenState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("kitchenstate: unmarshalling stored state: %w", err)
	}
	return &state, nil
}

func (b *MemoryBackend) SetState(_ context.Context, conversationID string, state *kitchendb.KitchenState) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("kitchenstate: marshalling state: %w", err)
	}
	b.states[conversationID] = data
	return nil
}
