package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with fmt.Errorf("%w: ...") so the API layer can map them
// to HTTP status codes with errors.Is(), without coupling business logic to
// transport concerns.

var (
	// ErrAuth signifies a missing/malformed Authorization header or a token the
	// identity provider rejected. Mapped to 401 Unauthorized. Provider-specific
	// failure detail (expired, revoked, bad signature) is deliberately collapsed
	// into this single error so it never reaches a client.
	ErrAuth = errors.New("authentication rejected")

	// ErrValidation signifies a request body that failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration signifies a required external-service setting that is
	// absent or unusable at request time. Mapped to 500; fatal to the request
	// but not to the process.
	ErrConfiguration = errors.New("configuration error")

	// ErrGeneration signifies a failure talking to the generation service:
	// timeout, transport error, or a non-success status. Exactly one attempt is
	// made per chat turn. Mapped to 500.
	ErrGeneration = errors.New("generation failed")

	// ErrPersistence signifies a conversation-store write failure. It is never
	// surfaced over HTTP: the reply to the user is independent of whether the
	// turn was durably recorded. It exists so the recording path can be logged
	// and counted distinctly.
	ErrPersistence = errors.New("persistence failed")
)
