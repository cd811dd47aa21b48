package models

// Envelope status values
const (
	StatusOK                  = "ok"
	StatusBadRequest          = "bad_request"
	StatusUnauthorized        = "unauthorized"
	StatusForbidden           = "forbidden"
	StatusNotFound            = "not_found"
	StatusNotImplemented      = "not_implemented"
	StatusConflict            = "conflict"
	StatusInternalServerError = "internal_server_error"
)

// Request types

type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=300"`
	Password string `json:"password" validate:"required"`
}

type AddThemeRequest struct {
	Title string `json:"title" validate:"required,max=50"`
}

// ThemeID and IsCorrect are pointers so that a missing field is
// distinguishable from a zero value.
type AddQuestionRequest struct {
	Title   string          `json:"title" validate:"required,max=50"`
	ThemeID *int64          `json:"theme_id" validate:"required"`
	Answers []AnswerRequest `json:"answers" validate:"required,dive"`
}

type AnswerRequest struct {
	Title     string `json:"title" validate:"required,max=50"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
}

// Response types

type ThemeListResponse struct {
	Themes []Theme `json:"themes"`
}

type QuestionListResponse struct {
	Questions []Question `json:"questions"`
}

// Envelope wraps every JSON response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// Domain types

type Theme struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Question struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	ThemeID int64    `json:"theme_id"`
	Answers []Answer `json:"answers"`
}

type Answer struct {
	Title     string `json:"title"`
	IsCorrect bool   `json:"is_correct"`
}

type Admin struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

// Identity strips the password hash.
func (a Admin) Identity() AdminIdentity {
	return AdminIdentity{ID: a.ID, Email: a.Email}
}

// AdminIdentity is what a session remembers about a logged-in admin.
type AdminIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
