package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

// DefaultGeminiBaseURL is the public Generative Language API
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig configures the Gemini client
type GeminiConfig struct {
	// APIKey is sent as the key query parameter (required)
	APIKey string
	// Model name (optional, defaults to gemini-2.0-flash)
	Model string
	// BaseURL of the API (optional, defaults to DefaultGeminiBaseURL)
	BaseURL string
	// HTTPTimeout per request (optional, defaults to 60 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the config and sets defaults if not provided
func (cfg *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("api_key", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeminiBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return nil
}

type geminiClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

var _ Client = (*geminiClient)(nil)

// NewGemini creates a Client backed by the Gemini generateContent endpoint
func NewGemini(cfg *GeminiConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &geminiClient{
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(cfg.BaseURL, "/"), cfg.Model),
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt as a single user turn and returns the first candidate's text
func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal gemini request")
	}

	reqURL := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error would echo the key in the query string
		return "", errors.Generationf("gemini request failed: %v", unwrapURLError(err))
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", errors.Generationf("gemini request status %d: %s", res.StatusCode, strings.TrimSpace(string(errBody))).
			WithMeta("status_code", res.StatusCode)
	}

	var payload geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeGeneration, "failed to decode gemini response")
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", errors.Generation("gemini response missing candidate text")
	}

	text := payload.Candidates[0].Content.Parts[0].Text
	slog.Debug("Gemini generation complete",
		"duration_ms", time.Since(start).Milliseconds(),
		"output_length", len(text))

	return text, nil
}

func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
