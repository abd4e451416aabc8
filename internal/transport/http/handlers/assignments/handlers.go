package assignmentshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/assignments"
	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
	"collegeerp/internal/transport/http/shared"
)

type Handler struct {
	Service *assignments.Service
	Core    *core.Store
	Perms   middleware.PermissionStore
}

func NewHandler(service *assignments.Service, coreStore *core.Store, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Core: coreStore, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assignments", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAssignmentsRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermAssignmentsWrite, h.Perms)).Get("/mine", h.handleMine)
		r.With(middleware.RequirePermission(auth.PermAssignmentsWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermAssignmentsWrite, h.Perms)).Put("/{assignmentID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermAssignmentsWrite, h.Perms)).Delete("/{assignmentID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	student, err := h.Core.StudentByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_a_student", "section assignment lists belong to students", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return
	}

	parts, err := h.Service.ForSection(r.Context(), student.SectionID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "assignments_failed", "failed to list assignments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, parts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) facultyForRequest(w http.ResponseWriter, r *http.Request) (core.Faculty, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return core.Faculty{}, false
	}
	faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_faculty", "only faculty manage assignments", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return core.Faculty{}, false
	}
	return faculty, true
}

func (h *Handler) handleMine(w http.ResponseWriter, r *http.Request) {
	faculty, ok := h.facultyForRequest(w, r)
	if !ok {
		return
	}
	parts, err := h.Service.ForFaculty(r.Context(), faculty.FacultyID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "assignments_failed", "failed to list assignments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, parts, middleware.GetRequestID(r.Context()))
}

type assignmentPayload struct {
	CourseID    int64  `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) decodeAssignment(w http.ResponseWriter, r *http.Request) (assignments.Assignment, bool) {
	var payload assignmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return assignments.Assignment{}, false
	}

	v := shared.NewValidator()
	if payload.CourseID == 0 {
		v.Add("courseId", "is required")
	}
	v.Required("title", payload.Title, "is required")
	due, okDue := v.Date("dueDate", payload.DueDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okDue {
		return assignments.Assignment{}, false
	}

	return assignments.Assignment{
		CourseID:    payload.CourseID,
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     due,
	}, true
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	faculty, ok := h.facultyForRequest(w, r)
	if !ok {
		return
	}
	item, ok := h.decodeAssignment(w, r)
	if !ok {
		return
	}
	item.CreatedBy = faculty.FacultyID

	id, err := h.Service.Create(r.Context(), item)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "assignment_create_failed", "failed to create assignment", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]int64{"assignmentId": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	faculty, ok := h.facultyForRequest(w, r)
	if !ok {
		return
	}
	assignmentID, err := strconv.ParseInt(chi.URLParam(r, "assignmentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_assignment", "assignment id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	item, ok := h.decodeAssignment(w, r)
	if !ok {
		return
	}
	item.AssignmentID = assignmentID
	item.CreatedBy = faculty.FacultyID

	if err := h.Service.Update(r.Context(), item); err != nil {
		if errors.Is(err, assignments.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "assignment_not_found", "no such assignment owned by you", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "assignment_update_failed", "failed to update assignment", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	faculty, ok := h.facultyForRequest(w, r)
	if !ok {
		return
	}
	assignmentID, err := strconv.ParseInt(chi.URLParam(r, "assignmentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_assignment", "assignment id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Delete(r.Context(), assignmentID, faculty.FacultyID); err != nil {
		if errors.Is(err, assignments.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "assignment_not_found", "no such assignment owned by you", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "assignment_delete_failed", "failed to delete assignment", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
