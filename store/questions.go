// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/models"
)

type questionRow struct {
	id      int64
	title   string
	themeID int64
}

func (r questionRow) toModel(answers []models.Answer) models.Question {
	if answers == nil {
		answers = []models.Answer{}
	}
	return models.Question{ID: r.id, Title: r.title, ThemeID: r.themeID, Answers: answers}
}

type answerRow struct {
	title     string
	isCorrect bool
}

func (r answerRow) toModel() models.Answer {
	return models.Answer{Title: r.title, IsCorrect: r.isCorrect}
}

type QuestionRepository struct {
	store *db.Store
}

func NewQuestionRepository(s *db.Store) *QuestionRepository {
	return &QuestionRepository{store: s}
}

// CreateQuestion inserts a question and its answers in one transaction.
// A nil themeID fails with db.ErrNotNullViolation, an unknown one with
// db.ErrForeignKeyViolation and a taken title with db.ErrUniqueViolation.
// The answer-shape rules are the caller's responsibility.
func (r *QuestionRepository) CreateQuestion(ctx context.Context, title string, themeID *int64, answers []models.Answer) (models.Question, error) {
	var question models.Question
	err := r.store.WithTx(ctx, func(tx *sql.Tx) error {
		var row questionRow
		err := tx.QueryRowContext(ctx, r.store.Rebind(`
			INSERT INTO questions (title, theme_id)
			VALUES (?, ?)
			RETURNING id, title, theme_id
		`), title, nullableID(themeID)).Scan(&row.id, &row.title, &row.themeID)
		if err != nil {
			return fmt.Errorf("failed to insert question: %w", db.ClassifyError(err))
		}

		created, err := r.createAnswers(ctx, tx, row.id, answers)
		if err != nil {
			return err
		}

		question = row.toModel(created)
		return nil
	})
	if err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (r *QuestionRepository) createAnswers(ctx context.Context, tx *sql.Tx, questionID int64, answers []models.Answer) ([]models.Answer, error) {
	query := r.store.Rebind(`
		INSERT INTO answers (title, is_correct, question_id)
		VALUES (?, ?, ?)
	`)

	created := make([]models.Answer, 0, len(answers))
	for _, answer := range answers {
		if _, err := tx.ExecContext(ctx, query, answer.Title, answer.IsCorrect, questionID); err != nil {
			return nil, fmt.Errorf("failed to insert answer: %w", db.ClassifyError(err))
		}
		created = append(created, answerRow{title: answer.Title, isCorrect: answer.IsCorrect}.toModel())
	}
	return created, nil
}

// GetQuestionByTitle returns the question with its answers, or nil when
// no question matches.
func (r *QuestionRepository) GetQuestionByTitle(ctx context.Context, title string) (*models.Question, error) {
	questions, err := r.queryQuestions(ctx, `WHERE q.title = ?`, title)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

// ListQuestions returns questions in creation order, optionally limited to
// one theme.
func (r *QuestionRepository) ListQuestions(ctx context.Context, themeID *int64) ([]models.Question, error) {
	if themeID == nil {
		return r.queryQuestions(ctx, "")
	}
	return r.queryQuestions(ctx, `WHERE q.theme_id = ?`, *themeID)
}

// queryQuestions joins questions with their answers and folds the
// one-row-per-answer result back into one Question per id.
func (r *QuestionRepository) queryQuestions(ctx context.Context, where string, args ...any) ([]models.Question, error) {
	rows, err := r.store.DB().QueryContext(ctx, r.store.Rebind(`
		SELECT q.id, q.title, q.theme_id, a.title, a.is_correct
		FROM questions q
		LEFT JOIN answers a ON a.question_id = q.id
		`+where+`
		ORDER BY q.id, a.id
	`), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	positions := make(map[int64]int)
	for rows.Next() {
		var (
			row       questionRow
			title     sql.NullString
			isCorrect sql.NullBool
		)
		if err := rows.Scan(&row.id, &row.title, &row.themeID, &title, &isCorrect); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		i, ok := positions[row.id]
		if !ok {
			i = len(questions)
			positions[row.id] = i
			questions = append(questions, row.toModel(nil))
		}

		// LEFT JOIN: a question without answers yields one NULL answer row
		if title.Valid {
			answer := answerRow{title: title.String, isCorrect: isCorrect.Bool}
			questions[i].Answers = append(questions[i].Answers, answer.toModel())
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	return questions, nil
}

// DeleteQuestion removes a question together with its answers.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int64) error {
	return r.store.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.store.Rebind(`DELETE FROM questions WHERE id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete question: %w", err)
		}
		return nil
	})
}
