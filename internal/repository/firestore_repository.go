package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	apperrors "apnadost/backend/internal/errors"
	"apnadost/backend/internal/model"
)

const (
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
)

type firestoreRecorder struct {
	client *firestore.Client
}

// NewFirestoreRecorder builds a Recorder writing to
// conversations/{uid}/messages/{id}.
func NewFirestoreRecorder(client *firestore.Client) Recorder {
	return &firestoreRecorder{client: client}
}

func (r *firestoreRecorder) RecordTurn(ctx context.Context, uid, message, response string) error {
	doc := r.client.
		Collection(conversationsCollection).
		Doc(uid).
		Collection(messagesCollection).
		Doc(uuid.NewString())

	// Timestamp is left at its zero value so the serverTimestamp tag makes
	// the store fill it in; caller clocks are never trusted for ordering.
	record := &model.ConversationRecord{
		Message:  message,
		Response: response,
	}
	if _, err := doc.Set(ctx, record); err != nil {
		return fmt.Errorf("%w: could not write turn for user: %v", apperrors.ErrPersistence, err)
	}
	return nil
}
