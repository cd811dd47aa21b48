// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-admin/cliparse"
	"github.com/danielhkuo/quiz-admin/middleware"
	"github.com/danielhkuo/quiz-admin/models"
	"github.com/danielhkuo/quiz-admin/service"
	"github.com/danielhkuo/quiz-admin/store"
)

type AdminHandler struct {
	admins *service.AdminService
	cfg    cliparse.Config
}

func NewAdminHandler(stores *store.Stores, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{admins: service.NewAdminService(stores), cfg: cfg}
}

// Login handles POST /admin.login
// Verifies the credentials and stores the admin identity in the session cookie
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	identity, err := h.admins.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := middleware.SetSessionCookie(w, identity, h.cfg.SessionKey, h.cfg.SessionTTL); err != nil {
		slog.Error("failed to set session cookie", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	middleware.OKResponse(w, identity)
}

// Current handles GET /admin.current
func (h *AdminHandler) Current(w http.ResponseWriter, r *http.Request) {
	identity, err := h.admins.CurrentAdmin(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.OKResponse(w, identity)
}
