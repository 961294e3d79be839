// ABOUTME: Scores how well an image matches a textual description
// ABOUTME: Appends the image as a multimodal message before prompting

package generate

import (
	"context"
	"fmt"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

// ScoreImage rates how well the image depicts the description on a
// 0-100 scale.
func (s *Service) ScoreImage(ctx context.Context, image []byte, description string) (*domain.ImageScore, error) {
	if len(image) == 0 {
		return nil, &cerrors.GenerationError{Task: "imagescore", Message: "no image data provided"}
	}
	if description == "" {
		return nil, &cerrors.GenerationError{Task: "imagescore", Message: "no description provided"}
	}

	model, err := s.languageModel(ctx, registry.NameImageScorer)
	if err != nil {
		return nil, err
	}

	var score domain.ImageScore
	err = withSession(ctx, model, "imagescore", func(session interfaces.LanguageModelSession) error {
		msg := interfaces.Message{
			Role:    "user",
			Content: "Target description: " + description,
			Image:   image,
		}
		if err := session.Append(ctx, msg); err != nil {
			return &cerrors.GenerationError{Task: "imagescore", Message: "failed to attach image", Err: err}
		}
		prompt := "Score from 0 to 100 how well the attached image matches the target description, with a one-sentence reasoning."
		return promptJSON(ctx, session, "imagescore", prompt, imageScoreSchema, &score)
	})
	if err != nil {
		return nil, err
	}

	if score.Score < 0 || score.Score > 100 {
		return nil, &cerrors.GenerationError{Task: "imagescore", Message: fmt.Sprintf("score %d is out of range", score.Score)}
	}

	s.deps.Logger.Info("image scored", map[string]interface{}{
		"score": score.Score,
	})
	return &score, nil
}
