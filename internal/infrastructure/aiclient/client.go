package aiclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"renova-server/internal/infrastructure/metrics"
)

// ErrUnavailable signals that no provider credentials were configured. The
// server still boots without them; only the AI endpoints fail.
var ErrUnavailable = errors.New("generative provider not configured: GEMINI_KEY is missing")

// ContentPart is one input unit for a generation call.
type ContentPart struct {
	Text  string
	Image *ImageInput
}

// ImageInput is inline binary input data.
type ImageInput struct {
	MIMEType string
	Data     []byte
}

// Provider issues generation calls against a model.
type Provider interface {
	GenerateContent(ctx context.Context, model string, parts []ContentPart) (*Response, error)
}

// Client is a Gemini-backed Provider. The underlying SDK client is built
// lazily on first use so that a missing API key does not block startup.
type Client struct {
	apiKey  string
	timeout time.Duration
	log     zerolog.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewClient builds a Client. An empty apiKey is allowed and logged; calls
// made through such a client return ErrUnavailable.
func NewClient(apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	if apiKey == "" {
		log.Warn().Msg("GEMINI_KEY is not set, AI endpoints will be unavailable")
	}
	return &Client{
		apiKey:  apiKey,
		timeout: timeout,
		log:     log.With().Str("component", "aiclient").Logger(),
	}
}

func (c *Client) get(ctx context.Context) (*genai.Client, error) {
	if c.apiKey == "" {
		return nil, ErrUnavailable
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}
	c.client = client
	return client, nil
}

// GenerateContent sends parts to the given model and returns the normalized
// response.
func (c *Client) GenerateContent(ctx context.Context, model string, parts []ContentPart) (*Response, error) {
	client, err := c.get(ctx)
	if err != nil {
		return nil, err
	}

	sdkParts := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		if part.Text != "" {
			sdkParts = append(sdkParts, genai.NewPartFromText(part.Text))
		}
		if part.Image != nil {
			sdkParts = append(sdkParts, &genai.Part{
				InlineData: &genai.Blob{
					MIMEType: part.Image.MIMEType,
					Data:     part.Image.Data,
				},
			})
		}
	}
	contents := []*genai.Content{genai.NewContentFromParts(sdkParts, genai.RoleUser)}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, model, contents, nil)
	metrics.ProviderDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Error().Err(err).Str("model", model).Msg("generate content call failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return fromGenAI(resp), nil
}

var _ Provider = (*Client)(nil)
