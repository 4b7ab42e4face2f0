package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

const (
	// DefaultHordeBaseURL is the public Stable Horde API
	DefaultHordeBaseURL = "https://stablehorde.net/api"

	// AnonymousHordeKey is accepted by Stable Horde at the lowest queue priority
	AnonymousHordeKey = "0000000000"

	hordeClientAgent = "card-forge:1:github.com/KirkDiggler/card-forge"
)

// HordeConfig configures the Stable Horde client
type HordeConfig struct {
	// APIKey sent in the apikey header (optional, defaults to the anonymous key)
	APIKey string
	// BaseURL of the API (optional, defaults to DefaultHordeBaseURL)
	BaseURL string
	// PollInterval between readiness checks (optional, defaults to 3 seconds)
	PollInterval time.Duration
	// MaxPolls before giving up on a queued request (optional, defaults to 30)
	MaxPolls int
	// HTTPTimeout per request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
	// Roller picks the art style (optional, defaults to the toolkit roller)
	Roller dice.Roller
}

// Validate validates the config and sets defaults if not provided
func (cfg *HordeConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.PollInterval < 0 {
		vb.InvalidField("poll_interval", "must not be negative")
	}
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("http_timeout", "must not be negative")
	}
	if cfg.MaxPolls < 0 {
		vb.InvalidField("max_polls", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.APIKey == "" {
		cfg.APIKey = AnonymousHordeKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultHordeBaseURL
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 3 * time.Second
	}
	if cfg.MaxPolls == 0 {
		cfg.MaxPolls = 30
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if cfg.Roller == nil {
		cfg.Roller = dice.DefaultRoller
	}
	return nil
}

type hordeClient struct {
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	maxPolls     int
	httpClient   *http.Client
	roller       dice.Roller
}

var _ Client = (*hordeClient)(nil)

// NewHorde creates a Client backed by the Stable Horde async generation API
func NewHorde(cfg *HordeConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &hordeClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/") + "/v2/generate",
		apiKey:       cfg.APIKey,
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		httpClient:   cfg.HTTPClient,
		roller:       cfg.Roller,
	}, nil
}

type hordeParams struct {
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Steps          int      `json:"steps"`
	SamplerName    string   `json:"sampler_name"`
	CfgScale       float64  `json:"cfg_scale"`
	Karras         bool     `json:"karras"`
	HiresFix       bool     `json:"hires_fix"`
	PostProcessing []string `json:"post_processing"`
}

type hordeRequest struct {
	Prompt         string      `json:"prompt"`
	Params         hordeParams `json:"params"`
	R2             bool        `json:"r2"`
	NSFW           bool        `json:"nsfw"`
	TrustedWorkers bool        `json:"trusted_workers"`
}

type hordeAsyncResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type hordeCheckResponse struct {
	Done    bool `json:"done"`
	Faulted bool `json:"faulted"`
}

type hordeStatusResponse struct {
	Faulted     bool `json:"faulted"`
	Generations []struct {
		Img string `json:"img"`
	} `json:"generations"`
	ImgURLs []string `json:"img_urls"`
}

// Generate submits the styled prompt, polls until the request is done and
// returns the first generation as a data URL or remote URL
func (c *hordeClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.InvalidArgument("prompt is required")
	}

	style := roller.Pick(c.roller, ArtStyles)
	start := time.Now()

	id, err := c.submit(ctx, StylePrompt(style, prompt))
	if err != nil {
		return "", err
	}

	slog.Debug("Horde request queued", "request_id", id, "style", style)

	if err := c.waitDone(ctx, id); err != nil {
		return "", errors.Wrap(err, "horde request did not complete").WithMeta("request_id", id)
	}

	handle, err := c.fetchResult(ctx, id)
	if err != nil {
		return "", err
	}

	slog.Debug("Horde generation complete",
		"request_id", id,
		"duration_ms", time.Since(start).Milliseconds())

	return handle, nil
}

func (c *hordeClient) submit(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(hordeRequest{
		Prompt: prompt,
		Params: hordeParams{
			Width:          PlaceholderWidth,
			Height:         PlaceholderHeight,
			Steps:          30,
			SamplerName:    "k_euler_a",
			CfgScale:       7.5,
			Karras:         true,
			HiresFix:       true,
			PostProcessing: []string{"GFPGAN"},
		},
		TrustedWorkers: true,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal horde request")
	}

	var out hordeAsyncResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/async", body, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.ImageGenerationf("horde response missing request id: %s", out.Message)
	}
	return out.ID, nil
}

func (c *hordeClient) waitDone(ctx context.Context, id string) error {
	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	for attempt := 1; attempt <= c.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return errors.WrapWithCode(ctx.Err(), errors.CodeImageGeneration, "image generation canceled")
		case <-timer.C:
		}
		timer.Reset(c.pollInterval)

		var check hordeCheckResponse
		if err := c.do(ctx, http.MethodGet, c.baseURL+"/check/"+id, nil, &check); err != nil {
			// a failed check is retried on the next tick
			slog.Debug("Horde check failed", "request_id", id, "attempt", attempt, "error", err)
			continue
		}
		if check.Faulted {
			return errors.ImageGeneration("horde request faulted")
		}
		if check.Done {
			return nil
		}
	}

	return errors.ImageGenerationf("image not ready after %d polls", c.maxPolls)
}

func (c *hordeClient) fetchResult(ctx context.Context, id string) (string, error) {
	var status hordeStatusResponse
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/status/"+id, nil, &status); err != nil {
		return "", err
	}
	if status.Faulted {
		return "", errors.ImageGeneration("horde request faulted").WithMeta("request_id", id)
	}

	if len(status.Generations) > 0 && status.Generations[0].Img != "" {
		img := status.Generations[0].Img
		if strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
			return img, nil
		}
		return "data:image/webp;base64," + img, nil
	}
	if len(status.ImgURLs) > 0 && status.ImgURLs[0] != "" {
		return status.ImgURLs[0], nil
	}

	return "", errors.ImageGeneration("horde response contained no image").WithMeta("request_id", id)
}

func (c *hordeClient) do(ctx context.Context, method, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build horde request")
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Client-Agent", hordeClientAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeImageGeneration, "horde request failed")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return errors.ImageGenerationf("horde %s status %d: %s", method, res.StatusCode, strings.TrimSpace(string(errBody))).
			WithMeta("status_code", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeImageGeneration, fmt.Sprintf("failed to decode horde %s response", method))
	}
	return nil
}
