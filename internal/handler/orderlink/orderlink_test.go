// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package orderlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowant-labs/Kitchly/internal/action"
	"github.com/rowant-labs/Kitchly/internal/kitchenstate"
)

func TestCanHandle(t *testing.T) {
	h := NewHandler(kitchenstate.NewStore(kitchenstate.NewMemoryBackend()))

	tests := []struct {
		message  string
		expected bool
	}{
		{"can you send me the order link again?", true},
		{"I want to buy the ingredients", true},
		{"where's my grocery link", true},
		{"make me pancakes", false},
		{"what's next", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, h.CanHandle(&action.Context{Message: tt.message}))
		})
	}
}

func TestHandle(t *testing.T) {
	ctx := t.Context()
	store := kitchenstate.NewStore(kitchenstate.NewMemoryBackend())
	require.NoError(t, store.Merge(ctx, "room1", kitchenstate.Patch{LastOrderLink: "https://example.com/order/abc"}))
	h := NewHandler(store)

	res := h.Handle(ctx, &action.Context{ConversationID: "room1", Message: "order link please"})
	require.True(t, res.Success)
	assert.Equal(t, "Here's your order link: https://example.com/order/abc", res.Text)
}

func TestHandle_NoLink(t *testing.T) {
	h := NewHandler(kitchenstate.NewStore(kitchenstate.NewMemoryBackend()))

	res := h.Handle(t.Context(), &action.Context{ConversationID: "room1", Message: "order link please"})
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorText, "don't have an order link")
}
