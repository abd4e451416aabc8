package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/attendance"
	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
	"collegeerp/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
	Core    *core.Store
	Perms   middleware.PermissionStore
}

func NewHandler(service *attendance.Service, coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAttendanceRead, h.Perms)).Get("/records", h.handleRecords)
		r.With(middleware.RequirePermission(auth.PermAttendanceRead, h.Perms)).Get("/summary", h.handleSummary)
		r.With(middleware.RequirePermission(auth.PermAttendanceWrite, h.Perms)).Get("/session", h.handleSession)
		r.With(middleware.RequirePermission(auth.PermAttendanceWrite, h.Perms)).Post("/session", h.handleMarkSession)
	})
}

func (h *Handler) studentForRequest(w http.ResponseWriter, r *http.Request) (core.Student, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return core.Student{}, false
	}
	student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_a_student", "attendance records belong to students", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return core.Student{}, false
	}
	return student, true
}

func courseIDParam(r *http.Request) int64 {
	raw := r.URL.Query().Get("courseId")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (h *Handler) handleRecords(w http.ResponseWriter, r *http.Request) {
	student, ok := h.studentForRequest(w, r)
	if !ok {
		return
	}
	page := shared.ParsePagination(r, 100, 500)
	records, err := h.Service.RecordsForStudent(r.Context(), student.StudentID, courseIDParam(r), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	student, ok := h.studentForRequest(w, r)
	if !ok {
		return
	}
	summary, err := h.Service.SummaryForStudent(r.Context(), student.StudentID, courseIDParam(r))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to summarize attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	courseID := courseIDParam(r)
	if courseID == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_course", "courseId is required", middleware.GetRequestID(r.Context()))
		return
	}
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	records, err := h.Service.SessionForCourse(r.Context(), courseID, date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to load session", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

type markSessionRequest struct {
	CourseID int64              `json:"courseId"`
	Date     string             `json:"date"`
	Entries  []attendance.Entry `json:"entries"`
}

func (h *Handler) handleMarkSession(w http.ResponseWriter, r *http.Request) {
	var payload markSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	if payload.CourseID == 0 {
		v.Add("courseId", "is required")
	}
	date, okDate := v.Date("date", payload.Date)
	if len(payload.Entries) == 0 {
		v.Add("entries", "at least one entry is required")
	}
	for _, entry := range payload.Entries {
		if !attendance.ValidStatus(entry.Status) {
			v.Add("entries", "status must be one of Present, Absent, Late, Excused")
			break
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okDate {
		return
	}

	if err := h.Service.MarkSession(r.Context(), payload.CourseID, date, payload.Entries); err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_save_failed", "failed to save session", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"saved": len(payload.Entries)}, middleware.GetRequestID(r.Context()))
}
