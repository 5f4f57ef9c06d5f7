// Package gemini calls the Gemini embedding API over HTTP.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/breaker"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// apiKeyHeader keeps the key out of request URLs and so out of *url.Error text.
const apiKeyHeader = "x-goog-api-key"

// Config configures the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Breaker breaker.Settings
}

// Client produces text embeddings.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[][]float32]
	log        *slog.Logger
}

// New constructs a client with the provided API key.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	log := logger.With("adapter", "gemini")
	return &Client{
		apiKey:     apiKey,
		model:      normalizeModel(cfg.Model),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cb:         breaker.New[[][]float32]("gemini", cfg.Breaker, log),
		log:        log,
	}, nil
}

// BatchEmbed returns one embedding per text, in input order, from a single
// batchEmbedContents call.
func (c *Client) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	modelRef := "models/" + c.model
	req := batchEmbedRequest{Requests: make([]embedRequest, len(texts))}
	for i, text := range texts {
		req.Requests[i] = embedRequest{
			Model:   modelRef,
			Content: content{Parts: []part{{Text: text}}},
		}
	}

	start := time.Now()
	vectors, err := c.cb.Execute(func() ([][]float32, error) {
		var resp batchEmbedResponse
		url := fmt.Sprintf("%s/%s:batchEmbedContents", c.baseURL, modelRef)
		if err := c.doJSON(ctx, url, req, &resp); err != nil {
			return nil, err
		}
		if len(resp.Embeddings) != len(texts) {
			return nil, fmt.Errorf("gemini returned %d embeddings for %d inputs", len(resp.Embeddings), len(texts))
		}
		out := make([][]float32, len(resp.Embeddings))
		for i, e := range resp.Embeddings {
			out[i] = e.Values
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("gemini batch embed: %w", breaker.MarkUnavailable(err))
	}

	c.log.DebugContext(ctx, "gemini batch embed",
		slog.Int("inputs", len(texts)),
		slog.Duration("duration", time.Since(start)),
	)
	return vectors, nil
}

func normalizeModel(model string) string {
	model = strings.TrimSpace(model)
	return strings.TrimPrefix(model, "models/")
}

func (c *Client) doJSON(ctx context.Context, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return fmt.Errorf("gemini api error: %s", errResp.Error.Message)
		}
		return fmt.Errorf("gemini api error: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type embedRequest struct {
	Model   string  `json:"model"`
	Content content `json:"content"`
}

type batchEmbedRequest struct {
	Requests []embedRequest `json:"requests"`
}

type batchEmbedResponse struct {
	Embeddings []struct {
		Values []float32 `json:"values"`
	} `json:"embeddings"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
