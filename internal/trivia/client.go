package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/trivia-quiz-bot/internal/domain/entities"
)

const maxBodySize = 1 << 20

// Client fetches generated trivia questions from the remote service.
// Each call performs exactly one request; there are no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

// NewClient creates a client for the trivia service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

// questionPayload is the wire shape of a generated question.
type questionPayload struct {
	Question      string            `json:"question" validate:"required"`
	Options       map[string]string `json:"options" validate:"required"`
	CorrectAnswer string            `json:"correctAnswer" validate:"required,oneof=A B C D"`
}

// errorPayload is the wire shape of a failure body. The error field is
// best-effort; services may omit it.
type errorPayload struct {
	Error string `json:"error"`
}

// Generate requests one question for the given difficulty. On a non-2xx
// response it returns a *TransportError carrying the service's error message
// or a synthesized one including the status. On a 2xx response whose body is
// not a valid question it returns a *MalformedResponseError; the question is
// never partially returned. A valid payload is returned unchanged.
func (c *Client) Generate(ctx context.Context, difficulty entities.Difficulty) (*entities.Question, error) {
	endpoint := fmt.Sprintf("%s/api/generate-trivia?difficulty=%s", c.baseURL, url.QueryEscape(string(difficulty)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build trivia request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("trivia service unreachable: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("read trivia response: %v", err),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			Status:  resp.StatusCode,
			Message: failureMessage(resp.StatusCode, body),
		}
	}

	var payload questionPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("decode question: %v", err)}
	}
	if err := c.validate.Struct(&payload); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid question shape: %v", err)}
	}

	options := make(map[entities.Label]string, len(entities.Labels()))
	for _, label := range entities.Labels() {
		text, ok := payload.Options[string(label)]
		if !ok || text == "" {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("option %s missing or empty", label)}
		}
		options[label] = text
	}

	return &entities.Question{
		Prompt:       payload.Question,
		Options:      options,
		CorrectLabel: entities.Label(payload.CorrectAnswer),
	}, nil
}

// failureMessage extracts the service's error text from a failure body,
// falling back to a generic message with the status code.
func failureMessage(status int, body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("trivia service returned status %d", status)
}
