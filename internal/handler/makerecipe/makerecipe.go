// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package makerecipe

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/rowant-labs/Kitchly/internal/action"
	"github.com/rowant-labs/Kitchly/internal/grocery"
	"github.com/rowant-labs/Kitchly/internal/kitchendb"
	"github.com/rowant-labs/Kitchly/internal/kitchenstate"
	"github.com/rowant-labs/Kitchly/internal/recipegen"
)

// NewHandler returns a Handler.
func NewHandler(generator *recipegen.Generator, orders *grocery.Client, store *kitchenstate.Store) *Handler {
	return &Handler{
		generator: generator,
		orders:    orders,
		store:     store,
	}
}

// Handler produces a recipe from a free-text request, with a grocery order
// link when ordering is available.
type Handler struct {
	generator *recipegen.Generator
	orders    *grocery.Client
	store     *kitchenstate.Store
}

// CanHandle accepts any message; the recipe action is the fallback and must
// be registered last.
func (h *Handler) CanHandle(*action.Context) bool {
	return true
}

func (h *Handler) Handle(ctx context.Context, actx *action.Context) action.Result {
	var prefs *kitchendb.Preferences
	if actx.State != nil {
		prefs = actx.State.Preferences
	}

	recipe, err := h.generator.GenerateRecipe(ctx, actx.Message, prefs)
	if err != nil {
		slog.WarnContext(ctx, "makerecipe: generating recipe", "error", err)
		var incomplete *recipegen.IncompleteError
		var parse *recipegen.ParseError
		if errors.As(err, &incomplete) || errors.As(err, &parse) {
			return action.Failure("I couldn't put together a complete recipe for that. Could you rephrase your request?")
		}
		return action.Failure("I couldn't create a recipe right now. Please try again.")
	}

	patch := kitchenstate.Patch{CurrentRecipe: recipe}
	link := orderLink(ctx, h.orders, recipe)
	// Without a new link, drop any stored one so it never points at a recipe
	// other than the one just returned.
	patch.LastOrderLink = link
	patch.ClearOrderLink = link == ""

	if err := h.store.Merge(ctx, actx.ConversationID, patch); err != nil {
		slog.ErrorContext(ctx, "makerecipe: persisting recipe", "error", err)
	}

	if link != "" {
		actx.StreamText("Want the ingredients delivered? Order them here: " + link)
	}
	return action.Result{
		Success: true,
		Text:    kitchendb.RenderRecipe(recipe),
		Payload: recipe,
	}
}

// orderLink creates an order link for the recipe, retrying once on transient
// failure. Any failure is non-fatal: the recipe is still returned and
// persisted without a link.
func orderLink(ctx context.Context, orders *grocery.Client, recipe *kitchendb.Recipe) string {
	if !orders.Enabled() {
		return ""
	}
	link, err := backoff.Retry(ctx, func() (string, error) {
		link, err := orders.CreateRecipeOrder(ctx, recipe)
		if err != nil {
			var verr *grocery.ValidationError
			if errors.As(err, &verr) {
				return "", backoff.Permanent(err)
			}
		}
		return link, err
	}, backoff.WithBackOff(backoff.NewConstantBackOff(500*time.Millisecond)), backoff.WithMaxTries(2))
	if err != nil {
		slog.WarnContext(ctx, "makerecipe: creating order link, continuing without one", "error", err)
		return ""
	}
	return link
}
