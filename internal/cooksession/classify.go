// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

// Package cooksession owns the cook-along session state machine: lexical
// navigation classification, pure step transitions, and the manager that
// persists sessions across turns.
package cooksession

import "strings"

// Command is a navigation command classified from a user utterance.
type Command int

const (
	// CommandNone means no lexical category matched.
	CommandNone Command = iota
	CommandDone
	CommandNext
	CommandPrevious
	CommandRepeat
	CommandStart
	CommandStatus
	CommandIngredients
)

// Categories are evaluated in priority order; the first match wins. Checking
// done before next keeps phrases like "okay, done" from advancing the
// session.
var categories = []struct {
	command  Command
	keywords []string
}{
	{CommandDone, []string{"done", "stop", "finish", "finished", "end", "exit", "quit"}},
	{CommandNext, []string{"next", "continue", "go on", "whats next", "okay", "ok", "got it"}},
	{CommandPrevious, []string{"previous", "back", "go back", "last step"}},
	{CommandRepeat, []string{"repeat", "again", "one more time", "say that again"}},
	{CommandStart, []string{"start", "begin", "lets go", "lets cook", "ready", "restart", "start over"}},
	{CommandStatus, []string{"where am i", "progress", "how far", "status", "which step"}},
	{CommandIngredients, []string{"what do i need", "ingredients", "ingredient", "supplies"}},
}

// Classify maps a raw utterance to a navigation command, or CommandNone when
// nothing matches lexically.
func Classify(utterance string) Command {
	norm := normalize(utterance)
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(norm, " "+kw+" ") {
				return cat.command
			}
		}
	}
	return CommandNone
}

// normalize lowercases, strips apostrophes, and replaces other punctuation
// with single spaces so keywords match on word boundaries only ("blender"
// never matches "end").
func normalize(utterance string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(utterance) {
		switch {
		case r == '\'' || r == '’':
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return " " + strings.Join(strings.Fields(b.String()), " ") + " "
}
