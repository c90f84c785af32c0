// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"github.com/rowant-labs/Kitchly/internal/action"
	"github.com/rowant-labs/Kitchly/internal/config"
	"github.com/rowant-labs/Kitchly/internal/cooksession"
	"github.com/rowant-labs/Kitchly/internal/grocery"
	"github.com/rowant-labs/Kitchly/internal/handler/cookalong"
	"github.com/rowant-labs/Kitchly/internal/handler/makeplan"
	"github.com/rowant-labs/Kitchly/internal/handler/makerecipe"
	"github.com/rowant-labs/Kitchly/internal/handler/orderlink"
	"github.com/rowant-labs/Kitchly/internal/kitchenstate"
	"github.com/rowant-labs/Kitchly/internal/llm"
	"github.com/rowant-labs/Kitchly/internal/recipegen"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		Project: conf.Google.Project,
	})
	if err != nil {
		return fmt.Errorf("main: creating genai client: %w", err)
	}

	var model llm.Client
	switch conf.Chat.ModelProvider {
	case "openai":
		oai := openai.NewClient()
		model = llm.NewOpenAI(&oai, conf.Chat.Model)
	default:
		model = llm.NewGemini(genAI, conf.Chat.Model)
	}

	store := kitchenstate.NewStore(kitchenstate.NewFirestoreBackend(firestore))
	generator := recipegen.NewGenerator(model)
	orders := grocery.NewClient(conf.Grocery.APIKey, conf.Grocery.Sandbox, conf.Grocery.PartnerLinkbackURL)
	if !orders.Enabled() {
		slog.WarnContext(ctx, "main: no grocery API key configured, ordering is disabled")
	}
	manager := cooksession.NewManager(store, generator, model)

	// Dispatch order matters: the recipe action is the fallback.
	actions := []action.Action{
		orderlink.NewHandler(store),
		cookalong.NewHandler(manager),
		makeplan.NewHandler(generator, orders, store),
		makerecipe.NewHandler(generator, orders, store),
	}

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/internal/")
	}))

	mux.Post("/api/message", handleMessage(store, actions))

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

type messageRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

type messageResponse struct {
	Success     bool     `json:"success"`
	Text        string   `json:"text,omitempty"`
	ErrorText   string   `json:"errorText,omitempty"`
	Supplements []string `json:"supplements,omitempty"`
}

func handleMessage(store *kitchenstate.Store, actions []action.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.ConversationID == "" || strings.TrimSpace(req.Message) == "" {
			http.Error(w, "conversationId and message are required", http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		var supplements []string
		actx := &action.Context{
			ConversationID: req.ConversationID,
			Message:        req.Message,
			State:          store.Get(ctx, req.ConversationID),
			Stream: func(text string) {
				supplements = append(supplements, text)
			},
		}

		for _, a := range actions {
			if !a.CanHandle(actx) {
				continue
			}
			res := a.Handle(ctx, actx)
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(messageResponse{
				Success:     res.Success,
				Text:        res.Text,
				ErrorText:   res.ErrorText,
				Supplements: supplements,
			}); err != nil {
				slog.ErrorContext(ctx, "main: encoding message response", "error", err)
			}
			return
		}

		http.Error(w, "no action can handle the message", http.StatusBadRequest)
	}
}
