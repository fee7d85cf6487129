package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"apnadost/backend/internal/auth"
	apperrors "apnadost/backend/internal/errors"
	"apnadost/backend/internal/interfaces"
	"apnadost/backend/internal/model"
	"apnadost/backend/internal/observability"
)

type ChatHandler struct {
	service interfaces.ChatService
	metrics *observability.Metrics
}

func NewChatHandler(svc interfaces.ChatService, metrics *observability.Metrics) *ChatHandler {
	return &ChatHandler{service: svc, metrics: metrics}
}

// Root is the liveness endpoint.
func (h *ChatHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, LivenessResponse{Message: "ApnaDost API live"})
}

// HandleChat processes POST /api/chat. The auth middleware has already
// verified the token and stored the uid in the context.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UIDFromContext(r.Context())
	if !ok {
		// Reaching here means the route was mounted without requireAuth.
		respondWithError(w, fmt.Errorf("%w: no verified user on request", apperrors.ErrAuth))
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", apperrors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	reply, err := h.service.Chat(r.Context(), uid, &req)
	if err != nil {
		h.metrics.ChatTurns.WithLabelValues("error").Inc()
		respondWithError(w, err)
		return
	}

	h.metrics.ChatTurns.WithLabelValues("ok").Inc()
	respondWithJSON(w, http.StatusOK, model.ChatResponse{Response: reply})
}
