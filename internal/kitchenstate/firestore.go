// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package kitchenstate

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

const statesCollection = "kitchenStates"

// FirestoreBackend stores one KitchenState document per conversation in the
// kitchenStates collection, keyed by the conversation identifier.
type FirestoreBackend struct {
	store *firestore.Client
}

// NewFirestoreBackend returns a FirestoreBackend using the given client.
func NewFirestoreBackend(store *firestore.Client) *FirestoreBackend {
	return &FirestoreBackend{store: store}
}

func (b *FirestoreBackend) GetState(ctx context.Context, conversationID string) (*kitchendb.KitchenState, error) {
	doc, err := b.store.Collection(statesCollection).Doc(conversationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kitchenstate: getting state doc: %w", err)
	}
	var state kitchendb.KitchenState
	if err := doc.DataTo(&state); err != nil {
		return nil, fmt.Errorf("kitchenstate: parsing state doc: %w", err)
	}
	return &state, nil
}

func (b *FirestoreBackend) SetState(ctx context.Context, conversationID string, state *kitchendb.KitchenState) error {
	if _, err := b.store.Collection(statesCollection).Doc(conversationID).Set(ctx, state); err != nil {
		return fmt.Errorf("kitchenstate: setting state doc: %w", err)
	}
	return nil
}
