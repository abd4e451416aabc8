package timetablehandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/timetable"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
)

type Handler struct {
	Service *timetable.Service
	Core    *core.Store
	Perms   middleware.PermissionStore
}

func NewHandler(service *timetable.Service, coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermTimetableRead, h.Perms)).Get("/timetable", h.handleWeek)
}

// handleWeek returns the 8x5 grid plus today's classes for the caller:
// a student sees their section's schedule, a teacher their own courses.
func (h *Handler) handleWeek(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	now := time.Now()
	switch user.Role {
	case auth.RoleStudent:
		student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
		if err != nil {
			h.failProfile(w, r, err)
			return
		}
		week, err := h.Service.WeekForSection(r.Context(), student.SectionID, now)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "timetable_failed", "failed to build timetable", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, week, middleware.GetRequestID(r.Context()))
	case auth.RoleTeacher:
		faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
		if err != nil {
			h.failProfile(w, r, err)
			return
		}
		week, err := h.Service.WeekForFaculty(r.Context(), faculty.FacultyID, now)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "timetable_failed", "failed to build timetable", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, week, middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusForbidden, "forbidden", "unrecognized role", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) failProfile(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "profile_not_found", "no profile record for this account", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
}
