package interfaces

import (
	"context"

	"apnadost/backend/internal/model"
)

// This file defines the service contracts consumed by the API layer.
// Depending on interfaces instead of concrete implementations decouples the
// handlers from the service layer and lets tests substitute mocks.

// ChatService defines the contract for processing one chat turn.
type ChatService interface {
	// Chat assembles the prompt for the given request, obtains a reply from
	// the generation service, and records the turn best-effort. The returned
	// reply may legitimately be empty.
	Chat(ctx context.Context, uid string, req *model.ChatRequest) (string, error)
}
