// Package ai talks to the Gemini generateContent endpoint and decodes
// its structured-JSON replies into typed values.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
)

var (
	// ErrUnavailable covers transport failures and non-OK statuses.
	ErrUnavailable = errors.New("ai: model unavailable")
	// ErrDecode covers replies that parse as neither the declared
	// schema nor valid JSON at all.
	ErrDecode = errors.New("ai: undecodable model reply")
)

type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      DefaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// SuggestTasks asks the model to decompose input into suggestions.
// Category values outside the enumeration coerce to personal; a reply
// that is not a suggestion array at all fails with ErrDecode.
func (c *Client) SuggestTasks(ctx context.Context, input string) ([]model.Suggestion, error) {
	raw, err := c.generate(ctx, BuildSuggestPrompt(input), suggestionListSchema())
	if err != nil {
		return nil, err
	}

	var records []struct {
		Task          string `json:"task"`
		Category      string `json:"category"`
		EstimatedTime string `json:"estimatedTime"`
	}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	out := make([]model.Suggestion, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Task) == "" {
			return nil, fmt.Errorf("%w: suggestion without task text", ErrDecode)
		}
		out = append(out, model.Suggestion{
			Task:          strings.TrimSpace(r.Task),
			Category:      model.ParseCategory(r.Category),
			EstimatedTime: strings.TrimSpace(r.EstimatedTime),
		})
	}
	return out, nil
}

// PlanEvent asks the model to describe the task as a calendar event.
// All four event fields are required; anything less is ErrDecode.
func (c *Client) PlanEvent(ctx context.Context, task model.Task) (model.CalendarEvent, error) {
	raw, err := c.generate(ctx, BuildEventPrompt(task), calendarEventSchema())
	if err != nil {
		return model.CalendarEvent{}, err
	}

	var record struct {
		Summary     string `json:"summary"`
		Description string `json:"description"`
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
	}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	event := model.CalendarEvent{
		Summary:     record.Summary,
		Description: record.Description,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
	}
	if err := event.Validate(); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return event, nil
}

// generate performs one generateContent call and returns the text of
// the first candidate part, which is expected to be schema-shaped JSON.
func (c *Client) generate(ctx context.Context, prompt string, schema *Schema) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: reply has no candidate text", ErrDecode)
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
