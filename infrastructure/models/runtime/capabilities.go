// ABOUTME: Model capabilities served by the runtime client
// ABOUTME: Language model sessions are client-side message histories

package runtime

import (
	"context"
	"encoding/json"
	"fmt"

	"quizzer-app-api/core/interfaces"
)

// Runtime model identifiers.
const (
	languageModelID = "quizzer-lm"
	summarizerID    = "quizzer-summarizer"
)

func translatorID(source, target string) string {
	return fmt.Sprintf("quizzer-translate-%s-%s", source, target)
}

// Capabilities implements interfaces.Capabilities on top of the model
// runtime. The detector is not served here; it runs in-process.
type Capabilities struct {
	client   *Client
	detector interfaces.ModelCapability
}

// NewCapabilities wires runtime-backed capabilities. detector supplies
// the local language detection capability.
func NewCapabilities(client *Client, detector interfaces.ModelCapability) *Capabilities {
	return &Capabilities{
		client:   client,
		detector: detector,
	}
}

// LanguageModel returns the shared conversational model capability.
func (c *Capabilities) LanguageModel() interfaces.ModelCapability {
	return &capability{
		client: c.client,
		model:  languageModelID,
		handle: func(cl *Client) interfaces.ModelHandle {
			return &languageModel{client: cl, model: languageModelID}
		},
	}
}

// Summarizer returns a summarizer capability configured with opts.
func (c *Capabilities) Summarizer(opts interfaces.SummarizerOptions) interfaces.ModelCapability {
	return &capability{
		client: c.client,
		model:  summarizerID,
		handle: func(cl *Client) interfaces.ModelHandle {
			return &summarizer{client: cl, model: summarizerID, opts: opts}
		},
	}
}

// Translator returns a capability for one language pair.
func (c *Capabilities) Translator(sourceLanguage, targetLanguage string) interfaces.ModelCapability {
	model := translatorID(sourceLanguage, targetLanguage)
	return &capability{
		client: c.client,
		model:  model,
		handle: func(cl *Client) interfaces.ModelHandle {
			return &translator{
				client: cl,
				model:  model,
				source: sourceLanguage,
				target: targetLanguage,
			}
		},
	}
}

// Detector returns the local detection capability.
func (c *Capabilities) Detector() interfaces.ModelCapability {
	return c.detector
}

// capability is one runtime-served model. Create pulls the model if it
// is not resident yet.
type capability struct {
	client *Client
	model  string
	handle func(*Client) interfaces.ModelHandle
}

func (c *capability) Availability(ctx context.Context) (interfaces.AvailabilityStatus, error) {
	return c.client.availability(ctx, c.model)
}

func (c *capability) Create(ctx context.Context, monitor interfaces.DownloadMonitor) (interfaces.ModelHandle, error) {
	status, err := c.client.availability(ctx, c.model)
	if err != nil {
		return nil, err
	}
	if status != interfaces.AvailabilityAvailable {
		if err := c.client.pull(ctx, c.model, monitor); err != nil {
			return nil, err
		}
	}
	return c.handle(c.client), nil
}

// languageModel is the shared conversational handle. It is never
// prompted directly; tasks clone sessions off it.
type languageModel struct {
	client *Client
	model  string
}

func (m *languageModel) AwaitReady(ctx context.Context) error {
	return m.client.awaitReady(ctx, m.model)
}

func (m *languageModel) Clone(ctx context.Context) (interfaces.LanguageModelSession, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return &session{client: m.client, model: m.model}, nil
}

// session holds a client-side message history. The runtime is
// stateless between calls; the full history travels with each prompt.
type session struct {
	client   *Client
	model    string
	messages []interfaces.Message
}

func (s *session) Append(ctx context.Context, msg interfaces.Message) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *session) Prompt(ctx context.Context, text string, constraint json.RawMessage) (string, error) {
	return s.client.generate(ctx, s.model, s.messages, text, constraint)
}

func (s *session) Destroy() {
	s.messages = nil
}

type summarizer struct {
	client *Client
	model  string
	opts   interfaces.SummarizerOptions
}

func (s *summarizer) AwaitReady(ctx context.Context) error {
	return s.client.awaitReady(ctx, s.model)
}

func (s *summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.client.summarize(ctx, s.model, s.opts, text)
}

type translator struct {
	client *Client
	model  string
	source string
	target string
}

func (t *translator) AwaitReady(ctx context.Context) error {
	return t.client.awaitReady(ctx, t.model)
}

func (t *translator) Translate(ctx context.Context, text string) (string, error) {
	return t.client.translate(ctx, t.model, t.source, t.target, text)
}
