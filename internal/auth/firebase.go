package auth

import (
	"context"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"apnadost/backend/internal/config"
	apperrors "apnadost/backend/internal/errors"
)

var (
	initOnce sync.Once
	initApp  *firebase.App
	initErr  error
)

// InitApp initializes the Firebase app exactly once per process and returns
// the same handle on every subsequent call. Credential material comes from
// FIREBASE_CREDENTIALS_JSON when set, otherwise from the credentials file
// path. Malformed or missing material makes startup fail; it is never
// retried per request.
func InitApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	initOnce.Do(func() {
		var opt option.ClientOption
		if cfg.FirebaseCredentialsJSON != "" {
			opt = option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))
		} else {
			opt = option.WithCredentialsFile(cfg.FirebaseCredentialsFile)
		}
		initApp, initErr = firebase.NewApp(ctx, nil, opt)
	})
	if initErr != nil {
		return nil, fmt.Errorf("could not initialize firebase app: %w", initErr)
	}
	return initApp, nil
}

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a Verifier backed by the Firebase Admin SDK.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (Verifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

// Verify checks the ID token with Firebase and returns its UID. Any provider
// failure (expired, malformed, bad signature, revoked) collapses into ErrAuth
// so no provider detail reaches a client. The raw token is never logged.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: invalid ID token", apperrors.ErrAuth)
	}
	return token.UID, nil
}
