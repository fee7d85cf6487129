package service

import (
	"context"
	"log/slog"
	"time"

	"apnadost/backend/internal/llm"
	"apnadost/backend/internal/model"
	"apnadost/backend/internal/observability"
	"apnadost/backend/internal/prompt"
	"apnadost/backend/internal/repository"
)

// recordTimeout bounds the detached conversation write. It runs on its own
// context so an abandoned request cannot cancel the write mid-flight.
const recordTimeout = 10 * time.Second

type ChatService struct {
	provider     llm.Provider
	recorder     repository.Recorder
	metrics      *observability.Metrics
	systemPrompt string
}

func NewChatService(provider llm.Provider, recorder repository.Recorder, metrics *observability.Metrics, systemPrompt string) *ChatService {
	return &ChatService{
		provider:     provider,
		recorder:     recorder,
		metrics:      metrics,
		systemPrompt: systemPrompt,
	}
}

// Chat processes one turn: assemble the prompt, call the generation service
// once, then record the exchange without awaiting confirmation. The reply is
// already determined when recording starts, so a store failure is reported to
// operators (log + counter) and never alters what the client receives.
func (s *ChatService) Chat(ctx context.Context, uid string, req *model.ChatRequest) (string, error) {
	fullPrompt := prompt.Assemble(s.systemPrompt, req.History, req.Message)

	reply, err := s.provider.Generate(ctx, fullPrompt)
	if err != nil {
		s.metrics.GenerationErrors.Inc()
		return "", err
	}
	if reply == "" {
		// An unexpected-but-200 upstream shape still yields a valid turn.
		// Counted so a burst of empty replies is visible to operators.
		s.metrics.GenerationEmpty.Inc()
		slog.Warn("Generation returned empty reply", "uid", uid)
	}

	go s.recordTurn(uid, req.Message, reply)

	return reply, nil
}

func (s *ChatService) recordTurn(uid, message, response string) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := s.recorder.RecordTurn(ctx, uid, message, response); err != nil {
		s.metrics.PersistenceFailures.Inc()
		slog.Error("Failed to record conversation turn", "uid", uid, "error", err)
	}
}
