package generate

import (
	"context"
	"encoding/json"

	"quizzer-app-api/core/domain"
	"quizzer-app-api/core/interfaces"
)

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// mockStore is an in-memory KeyValueStore
type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	deletes []string
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.data, key)
	return nil
}

// mockSession implements interfaces.LanguageModelSession
type mockSession struct {
	promptFunc func(text string, constraint json.RawMessage) (string, error)
	appendErr  error
	appended   []interfaces.Message
	prompts    []string
	destroyed  bool
}

func (m *mockSession) Append(ctx context.Context, msg interfaces.Message) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, msg)
	return nil
}

func (m *mockSession) Prompt(ctx context.Context, text string, constraint json.RawMessage) (string, error) {
	m.prompts = append(m.prompts, text)
	if m.promptFunc != nil {
		return m.promptFunc(text, constraint)
	}
	return "{}", nil
}

func (m *mockSession) Destroy() { m.destroyed = true }

// mockModel is a LanguageModel that hands out mockSessions and keeps
// track of every clone it produced
type mockModel struct {
	promptFunc func(text string, constraint json.RawMessage) (string, error)
	cloneErr   error
	sessions   []*mockSession
}

func (m *mockModel) AwaitReady(ctx context.Context) error { return nil }

func (m *mockModel) Clone(ctx context.Context) (interfaces.LanguageModelSession, error) {
	if m.cloneErr != nil {
		return nil, m.cloneErr
	}
	session := &mockSession{promptFunc: m.promptFunc}
	m.sessions = append(m.sessions, session)
	return session, nil
}

// mockSummarizer implements interfaces.Summarizer
type mockSummarizer struct {
	summarizeFunc func(text string) (string, error)
}

func (m *mockSummarizer) AwaitReady(ctx context.Context) error { return nil }

func (m *mockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(text)
	}
	return "summary", nil
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

// mockCapabilities implements interfaces.Capabilities
type mockCapabilities struct {
	languageModel  interfaces.ModelCapability
	summarizer     interfaces.ModelCapability
	summarizerOpts []interfaces.SummarizerOptions
}

func (m *mockCapabilities) LanguageModel() interfaces.ModelCapability {
	return m.languageModel
}

func (m *mockCapabilities) Summarizer(opts interfaces.SummarizerOptions) interfaces.ModelCapability {
	m.summarizerOpts = append(m.summarizerOpts, opts)
	return m.summarizer
}

func (m *mockCapabilities) Translator(source, target string) interfaces.ModelCapability {
	return nil
}

func (m *mockCapabilities) Detector() interfaces.ModelCapability {
	return nil
}

// gridLayout is a trivial layout collaborator placing every word on its
// own row
func gridLayout(words []domain.WordClue) domain.CrosswordLayout {
	layout := domain.CrosswordLayout{Rows: len(words)}
	for i, w := range words {
		if len(w.Answer) > layout.Cols {
			layout.Cols = len(w.Answer)
		}
		layout.Result = append(layout.Result, domain.PlacedWord{
			Answer:      w.Answer,
			Hint:        w.Hint,
			Row:         i + 1,
			Col:         1,
			Orientation: "across",
			Position:    i + 1,
		})
	}
	return layout
}
