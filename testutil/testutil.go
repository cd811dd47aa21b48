// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quiz-admin/auth"
	"github.com/danielhkuo/quiz-admin/cliparse"
	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/models"
	"github.com/danielhkuo/quiz-admin/store"
)

// TestDBURLEnv names the variable that switches tests to PostgreSQL
const TestDBURLEnv = "TEST_DATABASE_URL"

// Test admin credentials
const (
	TestAdminEmail    = "admin@example.com"
	TestAdminPassword = "admin-password"
)

// SetupTestDB creates a fresh test database with the full schema.
// Uses a throwaway SQLite file unless TEST_DATABASE_URL points at postgres.
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()
	ctx := context.Background()

	if url := os.Getenv(TestDBURLEnv); url != "" {
		resetPostgres(t, url)
		s, err := db.Open(ctx, url, db.PostgresSchema())
		if err != nil {
			t.Fatalf("Failed to open test database: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	}

	dsn := "file:" + filepath.Join(t.TempDir(), "quiz.db")
	s, err := db.Open(ctx, dsn, db.SQLiteSchema())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// resetPostgres drops all tables so each test starts with fresh sequences
func resetPostgres(t *testing.T, url string) {
	t.Helper()

	conn, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer conn.Close()

	_, err = conn.Exec(`
		DROP TABLE IF EXISTS answers CASCADE;
		DROP TABLE IF EXISTS questions CASCADE;
		DROP TABLE IF EXISTS themes CASCADE;
		DROP TABLE IF EXISTS admins CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:quiz-test.db",
		DatabaseType: "sqlite",
		SessionKey:   "test-session-key",
		SessionTTL:   cliparse.DefaultSessionTTL,
	}
}

// DefaultAnswers returns a valid answer set: two answers, the second correct
func DefaultAnswers() []models.Answer {
	return []models.Answer{
		{Title: "2", IsCorrect: false},
		{Title: "8", IsCorrect: true},
	}
}

// CreateTestTheme inserts a theme and returns it
func CreateTestTheme(t *testing.T, s *db.Store, title string) models.Theme {
	t.Helper()

	theme, err := store.NewThemeRepository(s).CreateTheme(context.Background(), title)
	if err != nil {
		t.Fatalf("Failed to create test theme: %v", err)
	}
	return theme
}

// CreateTestQuestion inserts a question with the given answers
// (DefaultAnswers when none are passed)
func CreateTestQuestion(t *testing.T, s *db.Store, title string, themeID int64, answers ...models.Answer) models.Question {
	t.Helper()

	if len(answers) == 0 {
		answers = DefaultAnswers()
	}
	question, err := store.NewQuestionRepository(s).CreateQuestion(context.Background(), title, &themeID, answers)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return question
}

// CreateTestAdmin inserts the standard test admin
func CreateTestAdmin(t *testing.T, s *db.Store) models.Admin {
	t.Helper()

	admin, err := store.NewAdminRepository(s).CreateAdmin(context.Background(), TestAdminEmail, TestAdminPassword)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return admin
}

// SessionCookie returns a signed session cookie for the identity
func SessionCookie(t *testing.T, cfg cliparse.Config, identity models.AdminIdentity) *http.Cookie {
	t.Helper()

	token, err := auth.EncodeSession(identity, cfg.SessionKey, cfg.SessionTTL)
	if err != nil {
		t.Fatalf("Failed to encode session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeAuthedRequest creates a request carrying a session for the given admin
func MakeAuthedRequest(t *testing.T, cfg cliparse.Config, admin models.Admin, method, path string, body interface{}) *http.Request {
	t.Helper()

	req := MakeRequest(method, path, body, nil)
	req.AddCookie(SessionCookie(t, cfg, admin.Identity()))
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// DecodeEnvelope decodes the response envelope, unmarshals its data into v
// (when v is non-nil) and returns the envelope status
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, v interface{}) string {
	t.Helper()

	var env struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	AssertJSON(t, w, &env)

	if v != nil {
		if err := json.Unmarshal(env.Data, v); err != nil {
			t.Fatalf("Failed to decode envelope data %s: %v", env.Data, err)
		}
	}
	return env.Status
}
