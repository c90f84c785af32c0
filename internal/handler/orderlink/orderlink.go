// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package orderlink

import (
	"context"
	"strings"

	"github.com/rowant-labs/Kitchly/internal/action"
	"github.com/rowant-labs/Kitchly/internal/kitchenstate"
)

var linkPhrases = []string{"order link", "shopping link", "order the ingredients", "buy the ingredients", "grocery link"}

// NewHandler returns a Handler.
func NewHandler(store *kitchenstate.Store) *Handler {
	return &Handler{store: store}
}

// Handler re-surfaces the conversation's last generated order link. Stateless
// beyond the read.
type Handler struct {
	store *kitchenstate.Store
}

func (h *Handler) CanHandle(actx *action.Context) bool {
	msg := strings.ToLower(actx.Message)
	for _, phrase := range linkPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func (h *Handler) Handle(ctx context.Context, actx *action.Context) action.Result {
	state := h.store.Get(ctx, actx.ConversationID)
	if state.LastOrderLink == "" {
		return action.Failure("I don't have an order link for this conversation yet. Ask me for a recipe or a meal plan first.")
	}
	return action.Result{
		Success: true,
		Text:    "Here's your order link: " + state.LastOrderLink,
	}
}
