package model

import "time"

// HistoryEntry is one prior turn supplied by the client. Both fields are
// optional on the wire; prompt assembly fills in defaults rather than failing.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. History order is meaningful: it
// is replayed verbatim into the prompt.
type ChatRequest struct {
	Message string         `json:"message" validate:"required"`
	History []HistoryEntry `json:"history,omitempty"`
}

// ChatResponse is the success payload of POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ConversationRecord is one persisted chat turn, stored under
// conversations/{uid}/messages/{id}. Timestamp carries the serverTimestamp
// option: the zero value is replaced by the store's clock at write time, so
// ordering survives clock skew between callers. Records are append-only.
type ConversationRecord struct {
	Message   string    `firestore:"message"`
	Response  string    `firestore:"response"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp"`
}
