// ABOUTME: HTTP client for the local model runtime
// ABOUTME: Speaks JSON over interfaces.HTTPClient for pull, generate, translate and summarize

package runtime

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"quizzer-app-api/core/interfaces"
)

// readyPollInterval is the delay between readiness polls.
const readyPollInterval = 500 * time.Millisecond

// Client talks to the model runtime's REST API.
type Client struct {
	http    interfaces.HTTPClient
	logger  interfaces.Logger
	baseURL string
}

// NewClient creates a runtime client for the given base URL.
func NewClient(httpClient interfaces.HTTPClient, logger interfaces.Logger, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		logger:  logger,
		baseURL: baseURL,
	}
}

func (c *Client) modelURL(model, suffix string) string {
	u := c.baseURL + "/api/models/" + url.PathEscape(model)
	if suffix != "" {
		u += "/" + suffix
	}
	return u
}

// availability reports the runtime's download state for a model.
func (c *Client) availability(ctx context.Context, model string) (interfaces.AvailabilityStatus, error) {
	resp, err := c.http.Get(ctx, c.modelURL(model, ""))
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() == 404 {
		return interfaces.AvailabilityUnavailable, nil
	}
	if resp.StatusCode() >= 300 {
		return "", fmt.Errorf("model runtime returned status %d", resp.StatusCode())
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body()).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode availability: %w", err)
	}
	return interfaces.AvailabilityStatus(payload.Status), nil
}

// pull asks the runtime to download a model, streaming NDJSON progress
// events. monitor may be nil.
func (c *Client) pull(ctx context.Context, model string, monitor interfaces.DownloadMonitor) error {
	resp, err := c.http.Post(ctx, c.modelURL(model, "pull"), bytes.NewReader(nil))
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.StatusCode() >= 300 {
		return fmt.Errorf("model runtime returned status %d", resp.StatusCode())
	}

	scanner := bufio.NewScanner(resp.Body())
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var event struct {
			Status    string `json:"status"`
			Completed int64  `json:"completed"`
			Total     int64  `json:"total"`
		}
		if err := json.Unmarshal(line, &event); err != nil {
			c.logger.Warn("skipping malformed pull event", map[string]interface{}{
				"model": model,
				"line":  string(line),
			})
			continue
		}
		if event.Status == "error" {
			return fmt.Errorf("model runtime failed to pull %s", model)
		}
		if monitor != nil && event.Total > 0 {
			monitor(float64(event.Completed) / float64(event.Total))
		}
	}
	return scanner.Err()
}

// awaitReady polls the model's readiness endpoint until it reports
// ready or ctx is done.
func (c *Client) awaitReady(ctx context.Context, model string) error {
	for {
		resp, err := c.http.Get(ctx, c.modelURL(model, "ready"))
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 300 {
			resp.Body().Close()
			return fmt.Errorf("model runtime returned status %d", resp.StatusCode())
		}
		var payload struct {
			Ready bool `json:"ready"`
		}
		decodeErr := json.NewDecoder(resp.Body()).Decode(&payload)
		resp.Body().Close()
		if decodeErr != nil {
			return fmt.Errorf("failed to decode readiness: %w", decodeErr)
		}
		if payload.Ready {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyPollInterval):
		}
	}
}

type generateMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// generate runs one constrained prompt against a model with the given
// conversation history.
func (c *Client) generate(ctx context.Context, model string, history []interfaces.Message, prompt string, constraint json.RawMessage) (string, error) {
	messages := make([]generateMessage, 0, len(history))
	for _, m := range history {
		gm := generateMessage{Role: m.Role, Content: m.Content}
		if len(m.Image) > 0 {
			gm.Image = base64.StdEncoding.EncodeToString(m.Image)
		}
		messages = append(messages, gm)
	}

	request := struct {
		Model    string            `json:"model"`
		Messages []generateMessage `json:"messages"`
		Prompt   string            `json:"prompt"`
		Format   json.RawMessage   `json:"format,omitempty"`
	}{
		Model:    model,
		Messages: messages,
		Prompt:   prompt,
		Format:   constraint,
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, c.baseURL+"/api/generate", request, &response); err != nil {
		return "", err
	}
	return response.Response, nil
}

// translate translates text for a fixed language pair.
func (c *Client) translate(ctx context.Context, model, source, target, text string) (string, error) {
	request := struct {
		Model  string `json:"model"`
		Source string `json:"source"`
		Target string `json:"target"`
		Text   string `json:"text"`
	}{model, source, target, text}

	var response struct {
		Text string `json:"text"`
	}
	if err := c.postJSON(ctx, c.baseURL+"/api/translate", request, &response); err != nil {
		return "", err
	}
	return response.Text, nil
}

// summarize produces a summary of text with the given options.
func (c *Client) summarize(ctx context.Context, model string, opts interfaces.SummarizerOptions, text string) (string, error) {
	request := struct {
		Model  string `json:"model"`
		Type   string `json:"type"`
		Length string `json:"length"`
		Format string `json:"format"`
		Text   string `json:"text"`
	}{model, opts.Type, opts.Length, opts.Format, text}

	var response struct {
		Summary string `json:"summary"`
	}
	if err := c.postJSON(ctx, c.baseURL+"/api/summarize", request, &response); err != nil {
		return "", err
	}
	return response.Summary, nil
}

func (c *Client) postJSON(ctx context.Context, url string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.http.Post(ctx, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.StatusCode() >= 300 {
		return fmt.Errorf("model runtime returned status %d", resp.StatusCode())
	}
	if err := json.NewDecoder(resp.Body()).Decode(response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
