// ABOUTME: Session lifecycle helpers for language model tasks
// ABOUTME: Clones the shared model per task and parses structured responses

package generate

import (
	"context"
	"encoding/json"

	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
)

// withSession runs fn inside a fresh clone of the shared model. The
// session is destroyed when fn returns, success or not, so one task's
// conversation never leaks into the next.
func withSession(ctx context.Context, model interfaces.LanguageModel, task string, fn func(session interfaces.LanguageModelSession) error) error {
	session, err := model.Clone(ctx)
	if err != nil {
		return &cerrors.GenerationError{Task: task, Message: "failed to clone model session", Err: err}
	}
	defer session.Destroy()
	return fn(session)
}

// promptJSON sends a prompt with an output schema constraint and
// decodes the response into out.
func promptJSON(ctx context.Context, session interfaces.LanguageModelSession, task, prompt string, constraint json.RawMessage, out interface{}) error {
	response, err := session.Prompt(ctx, prompt, constraint)
	if err != nil {
		return &cerrors.GenerationError{Task: task, Message: "model prompt failed", Err: err}
	}
	if err := json.Unmarshal([]byte(response), out); err != nil {
		return &cerrors.GenerationError{Task: task, Message: "invalid JSON returned by model", Err: err}
	}
	return nil
}
