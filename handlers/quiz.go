// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quiz-admin/middleware"
	"github.com/danielhkuo/quiz-admin/models"
	"github.com/danielhkuo/quiz-admin/service"
	"github.com/danielhkuo/quiz-admin/store"
)

type QuizHandler struct {
	quiz *service.QuizService
}

func NewQuizHandler(stores *store.Stores) *QuizHandler {
	return &QuizHandler{quiz: service.NewQuizService(stores)}
}

// AddTheme handles POST /quiz.add_theme
func (h *QuizHandler) AddTheme(w http.ResponseWriter, r *http.Request) {
	var req models.AddThemeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	theme, err := h.quiz.CreateTheme(r.Context(), req.Title)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.OKResponse(w, theme)
}

// ListThemes handles GET /quiz.list_themes
func (h *QuizHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.quiz.ListThemes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.OKResponse(w, models.ThemeListResponse{Themes: themes})
}

// AddQuestion handles POST /quiz.add_question
func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.AddQuestionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.Answer{Title: a.Title, IsCorrect: *a.IsCorrect})
	}

	question, err := h.quiz.CreateQuestion(r.Context(), req.Title, *req.ThemeID, answers)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.OKResponse(w, question)
}

// ListQuestions handles GET /quiz.list_questions
// Optional ?theme_id= limits the list to one theme
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	var themeID *int64
	if raw := r.URL.Query().Get("theme_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.ErrorResponseWithData(w, http.StatusBadRequest, "Validation failed", map[string][]string{
				"theme_id": {"Not a valid integer."},
			})
			return
		}
		themeID = &id
	}

	questions, err := h.quiz.ListQuestions(r.Context(), themeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.OKResponse(w, models.QuestionListResponse{Questions: questions})
}
