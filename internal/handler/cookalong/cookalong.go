// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package cookalong

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rowant-labs/Kitchly/internal/action"
	"github.com/rowant-labs/Kitchly/internal/cooksession"
)

var startPhrases = []string{"cook along", "walk me through", "step by step", "start cooking", "cook this with me"}

// NewHandler returns a Handler.
func NewHandler(manager *cooksession.Manager) *Handler {
	return &Handler{manager: manager}
}

// Handler advances a conversation's cook-along session.
type Handler struct {
	manager *cooksession.Manager
}

// CanHandle accepts the message when a session is already active, or when
// the utterance asks to cook along.
func (h *Handler) CanHandle(actx *action.Context) bool {
	if actx.State != nil && actx.State.CookingSession != nil {
		return true
	}
	msg := strings.ToLower(actx.Message)
	for _, phrase := range startPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func (h *Handler) Handle(ctx context.Context, actx *action.Context) action.Result {
	reply, err := h.manager.HandleMessage(ctx, actx.ConversationID, actx.Message)
	if err != nil {
		slog.WarnContext(ctx, "cookalong: handling message", "error", err)
		var start *cooksession.StartError
		if errors.As(err, &start) {
			return action.Failure("I couldn't start a cooking session from that. Tell me what you'd like to cook and I'll make a recipe first.")
		}
		return action.Failure("Something went wrong with your cooking session. Please try again.")
	}
	return action.Result{
		Success: true,
		Text:    reply,
	}
}
