package tabextract

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"quizzer-app-api/core/domain"
	"quizzer-app-api/core/interfaces"
)

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// mockAcquirer is a DocumentAcquirer with a function field
type mockAcquirer struct {
	acquireFunc func(ctx context.Context, tab domain.TabInfo) (*RawDocument, error)
	calls       atomic.Int32
}

func (m *mockAcquirer) Acquire(ctx context.Context, tab domain.TabInfo) (*RawDocument, error) {
	m.calls.Add(1)
	if m.acquireFunc != nil {
		return m.acquireFunc(ctx, tab)
	}
	return &RawDocument{}, nil
}

// mockCache is an in-memory interfaces.Cache with fault injection
type mockCache struct {
	mu     sync.Mutex
	values map[string][]byte
	getErr error
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{values: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.values[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// staticCapability always reports available and hands out a fixed handle
type staticCapability struct {
	handle interfaces.ModelHandle
	err    error
}

func (c *staticCapability) Availability(ctx context.Context) (interfaces.AvailabilityStatus, error) {
	return interfaces.AvailabilityAvailable, nil
}

func (c *staticCapability) Create(ctx context.Context, monitor interfaces.DownloadMonitor) (interfaces.ModelHandle, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.handle, nil
}

// mockDetector implements interfaces.LanguageDetector
type mockDetector struct {
	candidates []interfaces.LanguageCandidate
	err        error
}

func (m *mockDetector) AwaitReady(ctx context.Context) error { return nil }

func (m *mockDetector) Detect(ctx context.Context, text string) ([]interfaces.LanguageCandidate, error) {
	return m.candidates, m.err
}

// mockTranslator implements interfaces.Translator
type mockTranslator struct {
	translateFunc func(text string) (string, error)
}

func (m *mockTranslator) AwaitReady(ctx context.Context) error { return nil }

func (m *mockTranslator) Translate(ctx context.Context, text string) (string, error) {
	if m.translateFunc != nil {
		return m.translateFunc(text)
	}
	return text, nil
}

// mockSession implements interfaces.LanguageModelSession for capability mocks
type mockSession struct {
	promptFunc func(text string, constraint json.RawMessage) (string, error)
	appended   []interfaces.Message
	destroyed  bool
}

func (m *mockSession) Append(ctx context.Context, msg interfaces.Message) error {
	m.appended = append(m.appended, msg)
	return nil
}

func (m *mockSession) Prompt(ctx context.Context, text string, constraint json.RawMessage) (string, error) {
	if m.promptFunc != nil {
		return m.promptFunc(text, constraint)
	}
	return "{}", nil
}

func (m *mockSession) Destroy() { m.destroyed = true }

// mockCapabilities implements interfaces.Capabilities and records which
// translator pairs were requested
type mockCapabilities struct {
	detector        interfaces.ModelCapability
	translator      interfaces.ModelCapability
	languageModel   interfaces.ModelCapability
	summarizer      interfaces.ModelCapability
	translatorPairs []string
}

func (m *mockCapabilities) LanguageModel() interfaces.ModelCapability {
	return m.languageModel
}

func (m *mockCapabilities) Summarizer(opts interfaces.SummarizerOptions) interfaces.ModelCapability {
	return m.summarizer
}

func (m *mockCapabilities) Translator(source, target string) interfaces.ModelCapability {
	m.translatorPairs = append(m.translatorPairs, source+"-"+target)
	return m.translator
}

func (m *mockCapabilities) Detector() interfaces.ModelCapability {
	return m.detector
}
