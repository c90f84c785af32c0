// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package makeplan

import (
	"context"
	"errors"
	"log/slog"
	"strings"
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

// Handler produces a multi-day meal plan with a shoppable link for the
// consolidated ingredient list.
type Handler struct {
	generator *recipegen.Generator
	orders    *grocery.Client
	store     *kitchenstate.Store
}

func (h *Handler) CanHandle(actx *action.Context) bool {
	return strings.Contains(strings.ToLower(actx.Message), "plan")
}

func (h *Handler) Handle(ctx context.Context, actx *action.Context) action.Result {
	var prefs *kitchendb.Preferences
	if actx.State != nil {
		prefs = actx.State.Preferences
	}

	plan, err := h.generator.GeneratePlan(ctx, actx.Message, prefs)
	if err != nil {
		slog.WarnContext(ctx, "makeplan: generating plan", "error", err)
		var incomplete *recipegen.IncompleteError
		var parse *recipegen.ParseError
		if errors.As(err, &incomplete) || errors.As(err, &parse) {
			return action.Failure("I couldn't put together a complete meal plan for that. Could you rephrase your request?")
		}
		return action.Failure("I couldn't create a meal plan right now. Please try again.")
	}

	patch := kitchenstate.Patch{CurrentMealPlan: plan}
	link := shoppingLink(ctx, h.orders, plan)
	// Without a new link, drop any stored one so it never points at a plan
	// other than the one just returned.
	patch.LastOrderLink = link
	patch.ClearOrderLink = link == ""

	if err := h.store.Merge(ctx, actx.ConversationID, patch); err != nil {
		slog.ErrorContext(ctx, "makeplan: persisting plan", "error", err)
	}

	if link != "" {
		actx.StreamText("Want everything delivered? Order the full list here: " + link)
	}
	return action.Result{
		Success: true,
		Text:    kitchendb.RenderPlan(plan),
		Payload: plan,
	}
}

// shoppingLink creates a shopping list link for the plan's consolidated
// list, retrying once on transient failure. Any failure is non-fatal.
func shoppingLink(ctx context.Context, orders *grocery.Client, plan *kitchendb.MealPlan) string {
	if !orders.Enabled() {
		return ""
	}
	link, err := backoff.Retry(ctx, func() (string, error) {
		link, err := orders.CreateShoppingListOrder(ctx, plan.Title, plan.ConsolidatedList)
		if err != nil {
			var verr *grocery.ValidationError
			if errors.As(err, &verr) {
				return "", backoff.Permanent(err)
			}
		}
		return link, err
	}, backoff.WithBackOff(backoff.NewConstantBackOff(500*time.Millisecond)), backoff.WithMaxTries(2))
	if err != nil {
		slog.WarnContext(ctx, "makeplan: creating shopping list link, continuing without one", "error", err)
		return ""
	}
	return link
}
