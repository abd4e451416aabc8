package corehandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/assignments"
	"collegeerp/internal/domain/attendance"
	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/fees"
	"collegeerp/internal/domain/leave"
	"collegeerp/internal/domain/timetable"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
)

type Handler struct {
	Core        *core.Store
	Perms       middleware.PermissionStore
	Attendance  *attendance.Service
	Timetable   *timetable.Service
	Assignments *assignments.Service
	Leave       *leave.Service
	Fees        *fees.Service
}

func NewHandler(coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me/profile", h.handleProfile)
	r.Get("/me/courses", h.handleMyCourses)
	r.Get("/me/dashboard", h.handleDashboard)
	r.With(middleware.RequirePermission(auth.PermTimetableRead, h.Perms)).Get("/sections", h.handleListSections)
	r.With(middleware.RequirePermission(auth.PermAttendanceWrite, h.Perms)).Get("/sections/{sectionID}/students", h.handleSectionStudents)
}

type profileResponse struct {
	UserID  int64         `json:"userId"`
	Role    string        `json:"role"`
	Student *core.Student `json:"student,omitempty"`
	Faculty *core.Faculty `json:"faculty,omitempty"`
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	out := profileResponse{UserID: user.UserID, Role: user.Role}
	switch user.Role {
	case auth.RoleStudent:
		student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
		if err != nil {
			h.failProfile(w, r, err)
			return
		}
		out.Student = &student
	case auth.RoleTeacher:
		faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
		if err != nil {
			h.failProfile(w, r, err)
			return
		}
		out.Faculty = &faculty
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failProfile(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "profile_not_found", "no profile record for this account", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMyCourses(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var courses []core.Course
	switch user.Role {
	case auth.RoleStudent:
		student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
		if err != nil {
			h.failProfile(w, r, err)
			return
		}
		courses, err = h.Core.CoursesBySection(r.Context(), student.SectionID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "courses_failed", "failed to list courses", middleware.GetRequestID(r.Context()))
			return
		}
	case auth.RoleTeacher:
		faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
		if err != nil {
			h.failProfile(w, r, err)
			return
		}
		courses, err = h.Core.CoursesByFaculty(r.Context(), faculty.FacultyID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "courses_failed", "failed to list courses", middleware.GetRequestID(r.Context()))
			return
		}
	default:
		api.Fail(w, http.StatusForbidden, "forbidden", "unrecognized role", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, courses, middleware.GetRequestID(r.Context()))
}

type studentDashboard struct {
	Student       core.Student              `json:"student"`
	Attendance    attendance.OverallSummary `json:"attendance"`
	TodaysClasses []timetable.Slot          `json:"todaysClasses"`
	UpcomingDue   int                       `json:"upcomingDue"`
	PendingLeave  int                       `json:"pendingLeave"`
	FeeBalance    float64                   `json:"feeBalance"`
}

type teacherDashboard struct {
	Faculty       core.Faculty     `json:"faculty"`
	Courses       int              `json:"courses"`
	TodaysClasses []timetable.Slot `json:"todaysClasses"`
	PendingLeave  int              `json:"pendingLeave"`
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	switch user.Role {
	case auth.RoleStudent:
		h.handleStudentDashboard(w, r, user)
	case auth.RoleTeacher:
		h.handleTeacherDashboard(w, r, user)
	default:
		api.Fail(w, http.StatusForbidden, "forbidden", "unrecognized role", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleStudentDashboard(w http.ResponseWriter, r *http.Request, user auth.UserContext) {
	student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
	if err != nil {
		h.failProfile(w, r, err)
		return
	}

	out := studentDashboard{Student: student}
	now := time.Now()

	if h.Attendance != nil {
		summary, err := h.Attendance.SummaryForStudent(r.Context(), student.StudentID, 0)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		out.Attendance = summary.Overall
	}
	if h.Timetable != nil {
		week, err := h.Timetable.WeekForSection(r.Context(), student.SectionID, now)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		out.TodaysClasses = week.Today
	}
	if h.Assignments != nil {
		parts, err := h.Assignments.ForSection(r.Context(), student.SectionID, now)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		out.UpcomingDue = len(parts.Upcoming)
	}
	if h.Leave != nil {
		apps, err := h.Leave.ForStudent(r.Context(), student.StudentID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		for _, app := range apps {
			if app.Status == leave.StatusPending {
				out.PendingLeave++
			}
		}
	}
	if h.Fees != nil {
		statement, err := h.Fees.StatementForStudent(r.Context(), student.StudentID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		out.FeeBalance = statement.Summary.Balance
	}

	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTeacherDashboard(w http.ResponseWriter, r *http.Request, user auth.UserContext) {
	faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
	if err != nil {
		h.failProfile(w, r, err)
		return
	}

	out := teacherDashboard{Faculty: faculty}

	courses, err := h.Core.CoursesByFaculty(r.Context(), faculty.FacultyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
		return
	}
	out.Courses = len(courses)

	if h.Timetable != nil {
		week, err := h.Timetable.WeekForFaculty(r.Context(), faculty.FacultyID, time.Now())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		out.TodaysClasses = week.Today
	}
	if h.Leave != nil {
		apps, err := h.Leave.ForReviewer(r.Context(), faculty.FacultyID, 0)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
			return
		}
		for _, app := range apps {
			if app.Status == leave.StatusPending {
				out.PendingLeave++
			}
		}
	}

	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Core.ListSections(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sections_failed", "failed to list sections", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sections, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSectionStudents(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_section", "section id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	students, err := h.Core.StudentsBySection(r.Context(), sectionID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "students_failed", "failed to list students", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, students, middleware.GetRequestID(r.Context()))
}
