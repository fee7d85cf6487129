package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "apnadost/backend/internal/errors"
)

// generationTimeout bounds a single generateContent call. On expiry the turn
// fails with ErrGeneration; there is no retry.
const generationTimeout = 60 * time.Second

// Provider defines the interface for the generation service.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *http.Client
	url    string
	apiKey string
}

// NewGeminiProvider builds a Provider for the Gemini generateContent REST
// endpoint. url is the full endpoint; the API key is passed as the key query
// parameter on each call.
func NewGeminiProvider(url, apiKey string) Provider {
	return &geminiProvider{
		client: &http.Client{Timeout: generationTimeout},
		url:    url,
		apiKey: apiKey,
	}
}

// Wire shapes for the generateContent request and response. Only the fields
// this service reads are declared.
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.url == "" {
		return "", fmt.Errorf("%w: GEMINI_API_URL is not set", apperrors.ErrConfiguration)
	}

	body, err := json.Marshal(&generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: could not marshal request: %v", apperrors.ErrGeneration, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"?key="+p.apiKey, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("%w: could not create http request: %v", apperrors.ErrGeneration, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", apperrors.ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body is kept in the error for operator diagnostics; the API
		// layer never forwards it to a client.
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: api returned status %d: %s", apperrors.ErrGeneration, resp.StatusCode, string(bodyBytes))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("%w: could not decode response: %v", apperrors.ErrGeneration, err)
	}

	// A 200 with an unexpected shape is treated as an empty reply, not an
	// error, matching the upstream contract for filtered/blocked candidates.
	if len(genResp.Candidates) == 0 {
		return "", nil
	}
	parts := genResp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0].Text, nil
}
