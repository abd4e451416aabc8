package feeshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/fees"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
)

type Handler struct {
	Service *fees.Service
	Core    *core.Store
	Perms   middleware.PermissionStore
}

func NewHandler(service *fees.Service, coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermFeesRead, h.Perms)).Get("/fees", h.handleStatement)
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_a_student", "fee statements belong to students", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return
	}

	statement, err := h.Service.StatementForStudent(r.Context(), student.StudentID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "fees_failed", "failed to build statement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, statement, middleware.GetRequestID(r.Context()))
}
