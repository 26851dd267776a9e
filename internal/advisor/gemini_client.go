package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"finai/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements the AIClient interface on top of the Google Gemini
// API. The underlying client is created lazily on first use so that an
// unconfigured session never opens a connection.
type GeminiClient struct {
	apiKey    string
	modelName string
	timeout   time.Duration
	log       logging.Logger

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed AIClient. An empty apiKey yields a
// client that reports itself unconfigured. A zero timeout disables the
// per-request deadline.
func NewGeminiClient(apiKey, modelName string, timeout time.Duration, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
		log:       logger,
	}
}

// Configured reports whether an API key is present.
func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

// ensureModel initializes the Gemini client and model handle on first use.
func (c *GeminiClient) ensureModel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	c.log.WithField(logging.FieldModel, c.modelName).Debug("Gemini client initialized")
	return nil
}

// GenerateText sends a single prompt to the model and returns the joined text
// of the first candidate's parts.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := c.ensureModel(ctx); err != nil {
		return "", err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(fmt.Sprintf("%v", part))
	}
	return b.String(), nil
}

// Close releases the underlying API connection, if one was ever opened.
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	c.model = nil
	return err
}
