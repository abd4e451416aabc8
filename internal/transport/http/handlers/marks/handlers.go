package markshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/marks"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
)

type Handler struct {
	Service *marks.Service
	Core    *core.Store
	Perms   middleware.PermissionStore
}

func NewHandler(service *marks.Service, coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/marks", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermMarksRead, h.Perms)).Get("/report", h.handleReport)
		r.With(middleware.RequirePermission(auth.PermMarksWrite, h.Perms)).Get("/courses/{courseID}", h.handleCourseOverview)
		r.With(middleware.RequirePermission(auth.PermMarksWrite, h.Perms)).Post("/", h.handleSave)
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_a_student", "mark reports belong to students", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return
	}

	report, err := h.Service.ReportForStudent(r.Context(), student.StudentID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "marks_failed", "failed to build report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCourseOverview(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_course", "course id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	overview, err := h.Service.OverviewForCourse(r.Context(), courseID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "marks_failed", "failed to build course overview", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, overview, middleware.GetRequestID(r.Context()))
}

type saveMarksRequest struct {
	StudentID     int64    `json:"studentId"`
	CourseID      int64    `json:"courseId"`
	Internal1     *float64 `json:"internal1"`
	Internal2     *float64 `json:"internal2"`
	Internal3     *float64 `json:"internal3"`
	SemesterMarks *float64 `json:"semesterMarks"`
	CGPA          *float64 `json:"cgpa"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var payload saveMarksRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.StudentID == 0 || payload.CourseID == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "studentId and courseId are required", middleware.GetRequestID(r.Context()))
		return
	}

	rec := marks.Record{
		StudentID:     payload.StudentID,
		CourseID:      payload.CourseID,
		Internal1:     payload.Internal1,
		Internal2:     payload.Internal2,
		Internal3:     payload.Internal3,
		SemesterMarks: payload.SemesterMarks,
		CGPA:          payload.CGPA,
	}
	if err := h.Service.Save(r.Context(), rec); err != nil {
		api.Fail(w, http.StatusInternalServerError, "marks_save_failed", "failed to save marks", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "saved"}, middleware.GetRequestID(r.Context()))
}
