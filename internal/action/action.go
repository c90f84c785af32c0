// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package action defines the conversation action surface consumed by the
// message router.
package action

import (
	"context"

	"github.com/rowant-labs/Kitchly/internal/kitchendb"
)

// StreamFunc delivers supplementary content (e.g. an order link) after the
// primary reply.
type StreamFunc func(text string)

// Context is the conversational context for one inbound message.
type Context struct {
	// ConversationID identifies the conversation the message belongs to.
	ConversationID string

	// Message is the raw user utterance.
	Message string

	// Stream, when non-nil, receives supplementary content.
	Stream StreamFunc

	// State is a snapshot of the conversation's kitchen state, loaded by the
	// router before dispatch. May be nil.
	State *kitchendb.KitchenState
}

// StreamText sends text through the streaming callback if one is set.
func (c *Context) StreamText(text string) {
	if c.Stream != nil {
		c.Stream(text)
	}
}

// Result is the outcome of handling a message. Failures are always expressed
// here; handlers never propagate errors past this boundary.
type Result struct {
	// Success reports whether the action succeeded.
	Success bool

	// Text is the user-visible reply on success.
	Text string

	// ErrorText is the user-visible message on failure.
	ErrorText string

	// Payload is optional structured data for the caller.
	Payload any
}

// Failure returns a failed Result with the given user-visible message.
func Failure(errorText string) Result {
	return Result{ErrorText: errorText}
}

// Action is a conversation action the router can dispatch a message to.
type Action interface {
	// CanHandle reports whether this action wants the message.
	CanHandle(actx *Context) bool

	// Handle processes the message.
	Handle(ctx context.Context, actx *Context) Result
}
