// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/quiz-admin/models"
	"github.com/danielhkuo/quiz-admin/store"
	"github.com/danielhkuo/quiz-admin/testutil"
)

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

func TestAddTheme(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)

	req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_theme", models.AddThemeRequest{Title: "web-development"})
	w := serve(cfg, handler.AddTheme, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var theme models.Theme
	if status := testutil.DecodeEnvelope(t, w, &theme); status != models.StatusOK {
		t.Errorf("Expected status 'ok', got '%s'", status)
	}
	if theme.ID != 1 {
		t.Errorf("Expected theme id 1, got %d", theme.ID)
	}
	if theme.Title != "web-development" {
		t.Errorf("Expected title 'web-development', got '%s'", theme.Title)
	}
}

func TestAddTheme_Errors(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)

	testutil.CreateTestTheme(t, s, "web-development")

	testCases := []struct {
		name           string
		body           interface{}
		expectedCode   int
		expectedStatus string
	}{
		{"duplicate title", models.AddThemeRequest{Title: "web-development"}, http.StatusConflict, models.StatusConflict},
		{"missing title", map[string]string{}, http.StatusBadRequest, models.StatusBadRequest},
		{"empty title", models.AddThemeRequest{Title: ""}, http.StatusBadRequest, models.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_theme", tc.body)
			w := serve(cfg, handler.AddTheme, req)

			testutil.AssertStatus(t, w, tc.expectedCode)
			if status := testutil.DecodeEnvelope(t, w, nil); status != tc.expectedStatus {
				t.Errorf("Expected status '%s', got '%s'", tc.expectedStatus, status)
			}
		})
	}
}

func TestAddTheme_FieldErrors(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)

	req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_theme", map[string]string{})
	w := serve(cfg, handler.AddTheme, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var fields map[string][]string
	testutil.DecodeEnvelope(t, w, &fields)
	expected := map[string][]string{"title": {"Missing data for required field."}}
	if !reflect.DeepEqual(fields, expected) {
		t.Errorf("Expected field errors %v, got %v", expected, fields)
	}
}

func TestTitleLength(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)
	theme := testutil.CreateTestTheme(t, s, "arithmetic")

	longTitle := strings.Repeat("x", 51)
	answers := func(first string) []models.AnswerRequest {
		return []models.AnswerRequest{
			{Title: first, IsCorrect: boolPtr(true)},
			{Title: "B", IsCorrect: boolPtr(false)},
		}
	}

	testCases := []struct {
		name    string
		path    string
		handler http.HandlerFunc
		body    interface{}
		field   string
	}{
		{
			name:    "theme title",
			path:    "/quiz.add_theme",
			handler: handler.AddTheme,
			body:    models.AddThemeRequest{Title: longTitle},
			field:   "title",
		},
		{
			name:    "question title",
			path:    "/quiz.add_question",
			handler: handler.AddQuestion,
			body:    models.AddQuestionRequest{Title: longTitle, ThemeID: int64Ptr(theme.ID), Answers: answers("A")},
			field:   "title",
		},
		{
			name:    "answer title",
			path:    "/quiz.add_question",
			handler: handler.AddQuestion,
			body:    models.AddQuestionRequest{Title: "Q", ThemeID: int64Ptr(theme.ID), Answers: answers(longTitle)},
			field:   "answers[0].title",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", tc.path, tc.body)
			w := serve(cfg, tc.handler, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var fields map[string][]string
			if status := testutil.DecodeEnvelope(t, w, &fields); status != models.StatusBadRequest {
				t.Errorf("Expected status 'bad_request', got '%s'", status)
			}
			expected := map[string][]string{tc.field: {"Longer than maximum length 50."}}
			if !reflect.DeepEqual(fields, expected) {
				t.Errorf("Expected field errors %v, got %v", expected, fields)
			}
		})
	}

	t.Run("exactly 50 characters", func(t *testing.T) {
		title := strings.Repeat("é", 50)
		req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_theme", models.AddThemeRequest{Title: title})
		w := serve(cfg, handler.AddTheme, req)

		testutil.AssertStatus(t, w, http.StatusOK)
	})

	// Nothing over-long was stored
	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM themes WHERE LENGTH(title) > 50").Scan(&count); err != nil {
		t.Fatalf("Failed to count themes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no over-long titles, got %d", count)
	}
}

func TestListThemes(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)

	t.Run("empty", func(t *testing.T) {
		req := testutil.MakeAuthedRequest(t, cfg, admin, "GET", "/quiz.list_themes", nil)
		w := serve(cfg, handler.ListThemes, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ThemeListResponse
		testutil.DecodeEnvelope(t, w, &resp)
		if resp.Themes == nil || len(resp.Themes) != 0 {
			t.Errorf("Expected empty themes array, got %v", resp.Themes)
		}
	})

	t.Run("ordered by id", func(t *testing.T) {
		testutil.CreateTestTheme(t, s, "web-development")
		testutil.CreateTestTheme(t, s, "databases")

		req := testutil.MakeAuthedRequest(t, cfg, admin, "GET", "/quiz.list_themes", nil)
		w := serve(cfg, handler.ListThemes, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ThemeListResponse
		testutil.DecodeEnvelope(t, w, &resp)
		expected := []models.Theme{{ID: 1, Title: "web-development"}, {ID: 2, Title: "databases"}}
		if !reflect.DeepEqual(resp.Themes, expected) {
			t.Errorf("Expected %v, got %v", expected, resp.Themes)
		}
	})
}

func TestAddQuestion(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)
	theme := testutil.CreateTestTheme(t, s, "arithmetic")

	body := models.AddQuestionRequest{
		Title:   "2 + 2 * 3",
		ThemeID: int64Ptr(theme.ID),
		Answers: []models.AnswerRequest{
			{Title: "12", IsCorrect: boolPtr(false)},
			{Title: "8", IsCorrect: boolPtr(true)},
		},
	}
	req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_question", body)
	w := serve(cfg, handler.AddQuestion, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var question models.Question
	testutil.DecodeEnvelope(t, w, &question)

	expected := models.Question{
		ID:      1,
		Title:   "2 + 2 * 3",
		ThemeID: theme.ID,
		Answers: []models.Answer{{Title: "12", IsCorrect: false}, {Title: "8", IsCorrect: true}},
	}
	if !reflect.DeepEqual(question, expected) {
		t.Errorf("Expected %+v, got %+v", expected, question)
	}
}

func TestAddQuestion_Errors(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)
	theme := testutil.CreateTestTheme(t, s, "arithmetic")
	testutil.CreateTestQuestion(t, s, "taken", theme.ID)

	valid := []models.AnswerRequest{
		{Title: "A", IsCorrect: boolPtr(true)},
		{Title: "B", IsCorrect: boolPtr(false)},
	}

	testCases := []struct {
		name           string
		body           interface{}
		expectedCode   int
		expectedStatus string
	}{
		{
			name:           "duplicate title",
			body:           models.AddQuestionRequest{Title: "taken", ThemeID: int64Ptr(theme.ID), Answers: valid},
			expectedCode:   http.StatusConflict,
			expectedStatus: models.StatusConflict,
		},
		{
			name:           "unknown theme",
			body:           models.AddQuestionRequest{Title: "Q", ThemeID: int64Ptr(999), Answers: valid},
			expectedCode:   http.StatusNotFound,
			expectedStatus: models.StatusNotFound,
		},
		{
			name: "single answer",
			body: models.AddQuestionRequest{Title: "Q", ThemeID: int64Ptr(theme.ID), Answers: []models.AnswerRequest{
				{Title: "A", IsCorrect: boolPtr(true)},
			}},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: models.StatusBadRequest,
		},
		{
			name: "no correct answer",
			body: models.AddQuestionRequest{Title: "Q", ThemeID: int64Ptr(theme.ID), Answers: []models.AnswerRequest{
				{Title: "A", IsCorrect: boolPtr(false)},
				{Title: "B", IsCorrect: boolPtr(false)},
			}},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: models.StatusBadRequest,
		},
		{
			name: "two correct answers",
			body: models.AddQuestionRequest{Title: "Q", ThemeID: int64Ptr(theme.ID), Answers: []models.AnswerRequest{
				{Title: "A", IsCorrect: boolPtr(true)},
				{Title: "B", IsCorrect: boolPtr(true)},
			}},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: models.StatusBadRequest,
		},
		{
			name:           "missing theme id",
			body:           map[string]interface{}{"title": "Q", "answers": valid},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: models.StatusBadRequest,
		},
		{
			name: "answer missing is_correct",
			body: map[string]interface{}{"title": "Q", "theme_id": theme.ID, "answers": []map[string]interface{}{
				{"title": "A", "is_correct": true},
				{"title": "B"},
			}},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: models.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_question", tc.body)
			w := serve(cfg, handler.AddQuestion, req)

			testutil.AssertStatus(t, w, tc.expectedCode)
			if status := testutil.DecodeEnvelope(t, w, nil); status != tc.expectedStatus {
				t.Errorf("Expected status '%s', got '%s'", tc.expectedStatus, status)
			}
		})
	}

	// Nothing beyond the fixture should have been written
	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 question, got %d", count)
	}
}

func TestAddQuestion_ThemeIDAsString(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)
	testutil.CreateTestTheme(t, s, "arithmetic")

	body := map[string]interface{}{
		"title":    "Q",
		"theme_id": "1",
		"answers": []map[string]interface{}{
			{"title": "A", "is_correct": true},
			{"title": "B", "is_correct": false},
		},
	}
	req := testutil.MakeAuthedRequest(t, cfg, admin, "POST", "/quiz.add_question", body)
	w := serve(cfg, handler.AddQuestion, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var fields map[string][]string
	testutil.DecodeEnvelope(t, w, &fields)
	expected := map[string][]string{"theme_id": {"Not a valid integer."}}
	if !reflect.DeepEqual(fields, expected) {
		t.Errorf("Expected field errors %v, got %v", expected, fields)
	}
}

func TestListQuestions(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)

	arithmetic := testutil.CreateTestTheme(t, s, "arithmetic")
	geography := testutil.CreateTestTheme(t, s, "geography")
	testutil.CreateTestTheme(t, s, "empty")
	testutil.CreateTestQuestion(t, s, "2 + 2 * 3", arithmetic.ID)
	testutil.CreateTestQuestion(t, s, "Capital of France", geography.ID,
		models.Answer{Title: "Paris", IsCorrect: true},
		models.Answer{Title: "Lyon", IsCorrect: false},
	)

	testCases := []struct {
		name     string
		path     string
		expected []string
	}{
		{"all", "/quiz.list_questions", []string{"2 + 2 * 3", "Capital of France"}},
		{"filtered", "/quiz.list_questions?theme_id=2", []string{"Capital of France"}},
		{"empty theme", "/quiz.list_questions?theme_id=3", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeAuthedRequest(t, cfg, admin, "GET", tc.path, nil)
			w := serve(cfg, handler.ListQuestions, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.QuestionListResponse
			testutil.DecodeEnvelope(t, w, &resp)
			if resp.Questions == nil {
				t.Fatal("Expected questions array, got null")
			}

			titles := make([]string, 0, len(resp.Questions))
			for _, q := range resp.Questions {
				titles = append(titles, q.Title)
				if len(q.Answers) != 2 {
					t.Errorf("Expected 2 answers on %q, got %d", q.Title, len(q.Answers))
				}
			}
			if !reflect.DeepEqual(titles, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, titles)
			}
		})
	}
}

func TestListQuestions_BadThemeID(t *testing.T) {
	s := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuizHandler(store.New(s))
	admin := testutil.CreateTestAdmin(t, s)

	t.Run("not an integer", func(t *testing.T) {
		req := testutil.MakeAuthedRequest(t, cfg, admin, "GET", "/quiz.list_questions?theme_id=abc", nil)
		w := serve(cfg, handler.ListQuestions, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)

		var fields map[string][]string
		testutil.DecodeEnvelope(t, w, &fields)
		if len(fields["theme_id"]) != 1 {
			t.Errorf("Expected a theme_id field error, got %v", fields)
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		req := testutil.MakeAuthedRequest(t, cfg, admin, "GET", "/quiz.list_questions?theme_id=42", nil)
		w := serve(cfg, handler.ListQuestions, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
