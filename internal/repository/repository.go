package repository

import "context"

// Recorder defines the append-only interface to the conversation store.
// This system exposes no read path; history retrieval is out of scope.
type Recorder interface {
	// RecordTurn appends one user message and its generated reply under the
	// user's conversation log. The store assigns the timestamp at write time.
	RecordTurn(ctx context.Context, uid, message, response string) error
}
