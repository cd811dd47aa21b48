// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quiz-admin/models"
	"github.com/danielhkuo/quiz-admin/store"
)

// MinAnswers is the fewest answers a question may have.
const MinAnswers = 2

type QuizService struct {
	themes    *store.ThemeRepository
	questions *store.QuestionRepository
}

func NewQuizService(stores *store.Stores) *QuizService {
	return &QuizService{themes: stores.Themes, questions: stores.Questions}
}

// CreateTheme fails with ErrConflict when the title is taken.
func (s *QuizService) CreateTheme(ctx context.Context, title string) (models.Theme, error) {
	existing, err := s.themes.GetThemeByTitle(ctx, title)
	if err != nil {
		return models.Theme{}, err
	}
	if existing != nil {
		return models.Theme{}, fmt.Errorf("%w: theme %q already exists", ErrConflict, title)
	}

	theme, err := s.themes.CreateTheme(ctx, title)
	if err != nil {
		return models.Theme{}, err
	}

	slog.Info("theme created", "theme_id", theme.ID, "title", theme.Title)
	return theme, nil
}

func (s *QuizService) ListThemes(ctx context.Context) ([]models.Theme, error) {
	return s.themes.ListThemes(ctx)
}

// CreateQuestion checks, in order: title not taken (ErrConflict), theme
// exists (ErrNotFound), at least MinAnswers answers and exactly one of them
// correct (ErrBadRequest). Only then is the question written.
func (s *QuizService) CreateQuestion(ctx context.Context, title string, themeID int64, answers []models.Answer) (models.Question, error) {
	existing, err := s.questions.GetQuestionByTitle(ctx, title)
	if err != nil {
		return models.Question{}, err
	}
	if existing != nil {
		return models.Question{}, fmt.Errorf("%w: question %q already exists", ErrConflict, title)
	}

	theme, err := s.themes.GetThemeByID(ctx, themeID)
	if err != nil {
		return models.Question{}, err
	}
	if theme == nil {
		return models.Question{}, fmt.Errorf("%w: theme %d", ErrNotFound, themeID)
	}

	if err := validateAnswers(answers); err != nil {
		return models.Question{}, err
	}

	question, err := s.questions.CreateQuestion(ctx, title, &themeID, answers)
	if err != nil {
		return models.Question{}, err
	}

	slog.Info("question created", "question_id", question.ID, "theme_id", question.ThemeID, "answers", len(question.Answers))
	return question, nil
}

func validateAnswers(answers []models.Answer) error {
	if len(answers) < MinAnswers {
		return fmt.Errorf("%w: question needs at least %d answers, got %d", ErrBadRequest, MinAnswers, len(answers))
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: question needs exactly one correct answer, got %d", ErrBadRequest, correct)
	}
	return nil
}

// ListQuestions fails with ErrNotFound when themeID names a missing theme.
func (s *QuizService) ListQuestions(ctx context.Context, themeID *int64) ([]models.Question, error) {
	if themeID != nil {
		theme, err := s.themes.GetThemeByID(ctx, *themeID)
		if err != nil {
			return nil, err
		}
		if theme == nil {
			return nil, fmt.Errorf("%w: theme %d", ErrNotFound, *themeID)
		}
	}
	return s.questions.ListQuestions(ctx, themeID)
}
