package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

func newTestService(model *mockModel, store *mockStore) (*Service, *mockCapabilities) {
	caps := &mockCapabilities{
		languageModel: &staticCapability{handle: model},
	}
	deps := interfaces.Dependencies{Logger: nopLogger{}}
	svc := NewService(deps, registry.New(nopLogger{}), caps, store, gridLayout)
	return svc, caps
}

func testArticle() *domain.Article {
	return &domain.Article{
		Title:       "The Sun",
		TextContent: "The Sun is the star at the center of the Solar System.",
	}
}

func TestQuizGeneratesValidatedQuestions(t *testing.T) {
	quiz := domain.Quiz{Questions: []domain.Question{
		{
			Question:    "What is the Sun?",
			Options:     []string{"A star", "A planet", "A comet", "A moon"},
			Answer:      "A star",
			Explanation: "The Sun is a G-type main-sequence star.",
			Category:    "Astronomy",
		},
	}}
	payload, _ := json.Marshal(quiz)

	model := &mockModel{promptFunc: func(text string, constraint json.RawMessage) (string, error) {
		if !strings.Contains(text, "the star at the center") {
			t.Errorf("prompt does not carry the article text: %q", text)
		}
		if constraint == nil {
			t.Error("expected a schema constraint")
		}
		return string(payload), nil
	}}
	svc, _ := newTestService(model, newMockStore())

	got, err := svc.Quiz(context.Background(), testArticle())
	if err != nil {
		t.Fatalf("Quiz() error = %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].Answer != "A star" {
		t.Errorf("unexpected quiz: %+v", got)
	}
	if len(model.sessions) != 1 {
		t.Fatalf("expected 1 session clone, got %d", len(model.sessions))
	}
	if !model.sessions[0].destroyed {
		t.Error("session was not destroyed")
	}
}

func TestQuizRejectsAnswerOutsideOptions(t *testing.T) {
	quiz := domain.Quiz{Questions: []domain.Question{
		{
			Question: "What is the Sun?",
			Options:  []string{"A planet", "A comet", "A moon", "A galaxy"},
			Answer:   "A star",
		},
	}}
	payload, _ := json.Marshal(quiz)

	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return string(payload), nil
	}}
	svc, _ := newTestService(model, newMockStore())

	_, err := svc.Quiz(context.Background(), testArticle())
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestQuizRejectsDuplicateOptions(t *testing.T) {
	quiz := domain.Quiz{Questions: []domain.Question{
		{
			Question: "What is the Sun?",
			Options:  []string{"A star", "A star", "A moon", "A galaxy"},
			Answer:   "A star",
		},
	}}
	payload, _ := json.Marshal(quiz)

	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return string(payload), nil
	}}
	svc, _ := newTestService(model, newMockStore())

	_, err := svc.Quiz(context.Background(), testArticle())
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "duplicate option") {
		t.Errorf("error should name the duplicate option, got %v", err)
	}
}

func TestQuizInvalidJSONFromModel(t *testing.T) {
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return "not json at all", nil
	}}
	svc, _ := newTestService(model, newMockStore())

	_, err := svc.Quiz(context.Background(), testArticle())
	var genErr *cerrors.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if !strings.Contains(genErr.Message, "invalid JSON") {
		t.Errorf("unexpected message: %q", genErr.Message)
	}
	if !model.sessions[0].destroyed {
		t.Error("session must be destroyed on parse failure")
	}
}

func TestQuizEmptyArticle(t *testing.T) {
	svc, _ := newTestService(&mockModel{}, newMockStore())
	_, err := svc.Quiz(context.Background(), &domain.Article{})
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestSessionsAreIsolatedPerTask(t *testing.T) {
	quiz := domain.Quiz{Questions: []domain.Question{
		{Question: "Q?", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
	}}
	payload, _ := json.Marshal(quiz)
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return string(payload), nil
	}}
	svc, _ := newTestService(model, newMockStore())

	for i := 0; i < 3; i++ {
		if _, err := svc.Quiz(context.Background(), testArticle()); err != nil {
			t.Fatalf("Quiz() run %d error = %v", i, err)
		}
	}
	if len(model.sessions) != 3 {
		t.Fatalf("expected 3 independent sessions, got %d", len(model.sessions))
	}
	for i, session := range model.sessions {
		if !session.destroyed {
			t.Errorf("session %d not destroyed", i)
		}
		if len(session.prompts) != 1 {
			t.Errorf("session %d saw %d prompts, want 1", i, len(session.prompts))
		}
	}
}

func TestSuggestionsSerializesOnlyTaggedEntries(t *testing.T) {
	history := []domain.AnswerHistoryEntry{
		{Question: "Q1", SelectedAnswer: "a", CorrectAnswer: "a", IsCorrect: true, QuizCategory: "Astronomy"},
		{Question: "Q2", SelectedAnswer: "b", CorrectAnswer: "c"},
		{Question: "Q3", SelectedAnswer: "c", CorrectAnswer: "c", IsCorrect: true, QuizCategory: "History"},
		{Question: "Q4", SelectedAnswer: "d", CorrectAnswer: "a"},
		{Question: "Q5", SelectedAnswer: "a", CorrectAnswer: "b", QuizCategory: "Astronomy"},
	}
	store := newMockStore()
	raw, _ := json.Marshal(history)
	store.data[interfaces.KeyAnswerHistory] = raw

	set := domain.SuggestionSet{Categories: []domain.CategorySuggestion{
		{Category: "Astronomy", Score: 50, Summary: "Mixed results"},
	}}
	setPayload, _ := json.Marshal(set)

	model := &mockModel{promptFunc: func(text string, _ json.RawMessage) (string, error) {
		if text != "Generate suggestions." {
			t.Errorf("unexpected terminal prompt: %q", text)
		}
		return string(setPayload), nil
	}}
	svc, _ := newTestService(model, store)

	got, err := svc.Suggestions(context.Background())
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].Category != "Astronomy" {
		t.Errorf("unexpected suggestions: %+v", got)
	}

	session := model.sessions[0]
	// system seed plus one message per category-tagged entry
	if len(session.appended) != 4 {
		t.Fatalf("expected 4 appended messages, got %d", len(session.appended))
	}
	if session.appended[0].Role != "system" {
		t.Errorf("first message role = %q, want system", session.appended[0].Role)
	}
	seed := session.appended[0].Content
	if !strings.Contains(seed, "second person") {
		t.Errorf("seed must require second-person address, got %q", seed)
	}
	if !strings.Contains(seed, "appear in the supplied answers") {
		t.Errorf("seed must restrict the model to supplied topics, got %q", seed)
	}
	if !strings.Contains(seed, "do not repeat questions or categories") {
		t.Errorf("seed must forbid repeating questions and categories, got %q", seed)
	}
	for _, msg := range session.appended[1:] {
		if msg.Role != "user" {
			t.Errorf("answer message role = %q, want user", msg.Role)
		}
		var record suggestionRecord
		if err := json.Unmarshal([]byte(msg.Content), &record); err != nil {
			t.Errorf("answer message is not a record: %v", err)
		}
		if strings.Contains(msg.Content, "quizCategory") || strings.Contains(msg.Content, "timestamp") {
			t.Errorf("record leaks extra fields: %s", msg.Content)
		}
	}
	if !session.destroyed {
		t.Error("session was not destroyed")
	}
}

func TestSuggestionsCachedSetSkipsModel(t *testing.T) {
	set := domain.SuggestionSet{Categories: []domain.CategorySuggestion{
		{Category: "History", Score: 80, Summary: "Strong"},
	}}
	store := newMockStore()
	cached, _ := json.Marshal(set)
	store.data[interfaces.KeyFollowupSuggestions] = cached

	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		t.Fatal("model must not be prompted when a cached set exists")
		return "", nil
	}}
	svc, _ := newTestService(model, store)

	got, err := svc.Suggestions(context.Background())
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if got.Categories[0].Category != "History" {
		t.Errorf("unexpected cached suggestions: %+v", got)
	}
	if len(model.sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(model.sessions))
	}
}

func TestSuggestionsStoresGeneratedSet(t *testing.T) {
	store := newMockStore()
	set := domain.SuggestionSet{Categories: []domain.CategorySuggestion{{Category: "Math", Score: 20}}}
	setPayload, _ := json.Marshal(set)

	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return string(setPayload), nil
	}}
	svc, _ := newTestService(model, store)

	if _, err := svc.Suggestions(context.Background()); err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if store.data[interfaces.KeyFollowupSuggestions] == nil {
		t.Error("generated set was not cached")
	}
}

func TestCrosswordLaysOutModelWords(t *testing.T) {
	payload := `{"words":[{"answer":"sun","hint":"Nearest star"},{"answer":"planet","hint":"Orbits a star"}]}`
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return payload, nil
	}}
	svc, _ := newTestService(model, newMockStore())

	layout, err := svc.Crossword(context.Background(), testArticle())
	if err != nil {
		t.Fatalf("Crossword() error = %v", err)
	}
	if len(layout.Result) != 2 {
		t.Fatalf("expected 2 placed words, got %d", len(layout.Result))
	}
	if layout.Result[0].Answer != "SUN" {
		t.Errorf("answers must be uppercased, got %q", layout.Result[0].Answer)
	}
	if layout.Rows != 2 || layout.Cols != 6 {
		t.Errorf("unexpected grid %dx%d", layout.Rows, layout.Cols)
	}
}

func TestCrosswordDropsMultiWordAnswers(t *testing.T) {
	payload := `{"words":[{"answer":"solar system","hint":"Our home"},{"answer":"sun","hint":"Star"}]}`
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return payload, nil
	}}
	svc, _ := newTestService(model, newMockStore())

	layout, err := svc.Crossword(context.Background(), testArticle())
	if err != nil {
		t.Fatalf("Crossword() error = %v", err)
	}
	if len(layout.Result) != 1 || layout.Result[0].Answer != "SUN" {
		t.Errorf("multi-word answer should be dropped: %+v", layout.Result)
	}
}

func TestCrosswordNoUsableWords(t *testing.T) {
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return `{"words":[{"answer":"  ","hint":"blank"}]}`, nil
	}}
	svc, _ := newTestService(model, newMockStore())

	_, err := svc.Crossword(context.Background(), testArticle())
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestFlashcardGeneratesAndPersists(t *testing.T) {
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return `{"title":"Photosynthesis","content":"Plants convert light into chemical energy."}`, nil
	}}
	store := newMockStore()
	svc, _ := newTestService(model, store)

	card, err := svc.Flashcard(context.Background(), "Photosynthesis converts light energy into chemical energy.")
	if err != nil {
		t.Fatalf("Flashcard() error = %v", err)
	}
	if card.Title != "Photosynthesis" {
		t.Errorf("unexpected title %q", card.Title)
	}
	if card.TextExtract == "" {
		t.Error("source passage should be carried on the card")
	}

	cards, err := svc.Flashcards(context.Background())
	if err != nil {
		t.Fatalf("Flashcards() error = %v", err)
	}
	if len(cards) != 1 || cards[0].Title != "Photosynthesis" {
		t.Errorf("card was not persisted: %+v", cards)
	}
}

func TestFlashcardAppendsToExisting(t *testing.T) {
	store := newMockStore()
	existing, _ := json.Marshal([]domain.Flashcard{{Title: "Old", Content: "old"}})
	store.data[interfaces.KeyFlashcards] = existing

	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return `{"title":"New","content":"new"}`, nil
	}}
	svc, _ := newTestService(model, store)

	if _, err := svc.Flashcard(context.Background(), "some passage"); err != nil {
		t.Fatalf("Flashcard() error = %v", err)
	}
	cards, _ := svc.Flashcards(context.Background())
	if len(cards) != 2 || cards[0].Title != "Old" || cards[1].Title != "New" {
		t.Errorf("unexpected card list: %+v", cards)
	}
}

func TestScoreImageAppendsImageBeforePrompt(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return `{"score":85,"reasoning":"Close match."}`, nil
	}}
	svc, _ := newTestService(model, newMockStore())

	score, err := svc.ScoreImage(context.Background(), image, "a red bicycle")
	if err != nil {
		t.Fatalf("ScoreImage() error = %v", err)
	}
	if score.Score != 85 {
		t.Errorf("score = %d, want 85", score.Score)
	}

	session := model.sessions[0]
	if len(session.appended) != 1 || session.appended[0].Image == nil {
		t.Fatalf("image was not appended: %+v", session.appended)
	}
	if !strings.Contains(session.appended[0].Content, "a red bicycle") {
		t.Errorf("description missing from appended message: %q", session.appended[0].Content)
	}
}

func TestScoreImageOutOfRange(t *testing.T) {
	model := &mockModel{promptFunc: func(string, json.RawMessage) (string, error) {
		return `{"score":150,"reasoning":"off the scale"}`, nil
	}}
	svc, _ := newTestService(model, newMockStore())

	_, err := svc.ScoreImage(context.Background(), []byte{1}, "anything")
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestScoreImageMissingInputs(t *testing.T) {
	svc, _ := newTestService(&mockModel{}, newMockStore())
	if _, err := svc.ScoreImage(context.Background(), nil, "desc"); !cerrors.IsGeneration(err) {
		t.Errorf("missing image: expected GenerationError, got %v", err)
	}
	if _, err := svc.ScoreImage(context.Background(), []byte{1}, ""); !cerrors.IsGeneration(err) {
		t.Errorf("missing description: expected GenerationError, got %v", err)
	}
}

func TestSummaryUsesSummarizerOptions(t *testing.T) {
	summarizer := &mockSummarizer{summarizeFunc: func(text string) (string, error) {
		return "## TL;DR\nA star.", nil
	}}
	svc, caps := newTestService(&mockModel{}, newMockStore())
	caps.summarizer = &staticCapability{handle: summarizer}

	summary, err := svc.Summary(context.Background(), testArticle())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary != "## TL;DR\nA star." {
		t.Errorf("unexpected summary %q", summary)
	}
	if len(caps.summarizerOpts) != 1 {
		t.Fatalf("expected 1 summarizer request, got %d", len(caps.summarizerOpts))
	}
	opts := caps.summarizerOpts[0]
	if opts.Type != "tldr" || opts.Length != "long" || opts.Format != "markdown" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestSummaryFailureIsGenerationError(t *testing.T) {
	summarizer := &mockSummarizer{summarizeFunc: func(string) (string, error) {
		return "", fmt.Errorf("backend gone")
	}}
	svc, caps := newTestService(&mockModel{}, newMockStore())
	caps.summarizer = &staticCapability{handle: summarizer}

	_, err := svc.Summary(context.Background(), testArticle())
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestCloneFailureIsGenerationError(t *testing.T) {
	model := &mockModel{cloneErr: fmt.Errorf("session limit reached")}
	svc, _ := newTestService(model, newMockStore())

	_, err := svc.Quiz(context.Background(), testArticle())
	if !cerrors.IsGeneration(err) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}
