// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package sanitize repairs or rejects model-generated ingredient data before
// it reaches storage or the grocery API.
package sanitize

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

// Error indicates an ingredient that cannot be repaired and fails the whole
// batch.
type Error struct {
	// Index is the position of the ingredient in its list.
	Index int

	// Field is the name of the offending field.
	Field string

	// Reason describes why the field is invalid.
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("sanitize: ingredient %d: %s %s", e.Index, e.Field, e.Reason)
}

// Ingredient sanitizes a single ingredient. A missing or blank name is
// unrecoverable since the grocery API requires one. Measurements with a
// non-positive or non-finite quantity or a blank unit are dropped with a
// warning. An ingredient that loses every measurement is still accepted;
// order building defaults unmeasured items before submission.
func Ingredient(item kitchendb.Ingredient, index int) (kitchendb.Ingredient, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return kitchendb.Ingredient{}, &Error{Index: index, Field: "name", Reason: "is required"}
	}
	item.Name = name

	kept := item.Measurements[:0:0]
	for _, m := range item.Measurements {
		if m.Quantity <= 0 || math.IsNaN(m.Quantity) || math.IsInf(m.Quantity, 0) {
			slog.Warn("sanitize: dropping measurement with invalid quantity",
				"ingredient", name, "quantity", m.Quantity)
			continue
		}
		if strings.TrimSpace(m.Unit) == "" {
			slog.Warn("sanitize: dropping measurement with blank unit",
				"ingredient", name, "quantity", m.Quantity)
			continue
		}
		m.Unit = strings.TrimSpace(m.Unit)
		kept = append(kept, m)
	}
	item.Measurements = kept
	return item, nil
}

// Ingredients sanitizes a list of ingredients, failing the whole batch on the
// first unrecoverable item.
func Ingredients(items []kitchendb.Ingredient) ([]kitchendb.Ingredient, error) {
	out := make([]kitchendb.Ingredient, 0, len(items))
	for i, item := range items {
		cleaned, err := Ingredient(item, i)
		if err != nil {
			return nil, err
		}
		out = append(out, cleaned)
	}
	return out, nil
}

// LineItem sanitizes a shopping list line item. Line items carry the same
// shape as ingredients.
func LineItem(item kitchendb.Ingredient, index int) (kitchendb.Ingredient, error) {
	return Ingredient(item, index)
}

// LineItems sanitizes a list of shopping list line items.
func LineItems(items []kitchendb.Ingredient) ([]kitchendb.Ingredient, error) {
	return Ingredients(items)
}
