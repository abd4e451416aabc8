package reportshandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/reports"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Core    *core.Store
	Perms   middleware.PermissionStore
}

func NewHandler(service *reports.Service, coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/report-card", h.handleOwnReportCard)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/students/{studentID}/report-card", h.handleStudentReportCard)
	})
}

func (h *Handler) handleOwnReportCard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_a_student", "report cards belong to students", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return
	}
	h.writeReportCard(w, r, student.StudentID)
}

// handleStudentReportCard lets a teacher pull the report card for a student
// in one of their sections.
func (h *Handler) handleStudentReportCard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if user.Role != auth.RoleTeacher {
		api.Fail(w, http.StatusForbidden, "forbidden", "teacher role required", middleware.GetRequestID(r.Context()))
		return
	}

	faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusForbidden, "not_faculty", "only faculty read student report cards", middleware.GetRequestID(r.Context()))
		return
	}

	studentID, err := strconv.ParseInt(chi.URLParam(r, "studentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_student", "student id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	student, err := h.Core.StudentByID(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "student_not_found", "no such student", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to load student", middleware.GetRequestID(r.Context()))
		}
		return
	}

	teaches, err := h.Core.TeachesSection(r.Context(), faculty.FacultyID, student.SectionID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to check section access", middleware.GetRequestID(r.Context()))
		return
	}
	if !teaches {
		api.Fail(w, http.StatusForbidden, "forbidden", "student is not in one of your sections", middleware.GetRequestID(r.Context()))
		return
	}

	h.writeReportCard(w, r, student.StudentID)
}

func (h *Handler) writeReportCard(w http.ResponseWriter, r *http.Request, studentID int64) {
	pdf, err := h.Service.ReportCard(r.Context(), studentID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_failed", "failed to render report card", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report-card.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
