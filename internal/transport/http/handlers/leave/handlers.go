package leavehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/leave"
	"collegeerp/internal/platform/storage"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
	"collegeerp/internal/transport/http/shared"
)

type Handler struct {
	Service       *leave.Service
	Core          *core.Store
	Storage       *storage.Client
	Perms         middleware.PermissionStore
	MaxProofBytes int64
}

func NewHandler(service *leave.Service, coreStore *core.Store, storageClient *storage.Client, perms middleware.PermissionStore, maxProofBytes int64) *Handler {
	return &Handler{Service: service, Core: coreStore, Storage: storageClient, Perms: perms, MaxProofBytes: maxProofBytes}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermLeaveWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermLeaveWrite, h.Perms)).Put("/{leaveID}", h.handleEdit)
		r.With(middleware.RequirePermission(auth.PermLeaveWrite, h.Perms)).Post("/proofs", h.handleUploadProof)
		r.With(middleware.RequirePermission(auth.PermLeaveReview, h.Perms)).Get("/review", h.handleReviewList)
		r.With(middleware.RequirePermission(auth.PermLeaveReview, h.Perms)).Post("/{leaveID}/status", h.handleTransition)
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
			api.Fail(w, http.StatusForbidden, "not_a_student", "leave applications belong to students", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return core.Student{}, false
	}
	return student, true
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	student, ok := h.studentForRequest(w, r)
	if !ok {
		return
	}
	apps, err := h.Service.ForStudent(r.Context(), student.StudentID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "failed to list applications", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, apps, middleware.GetRequestID(r.Context()))
}

type leavePayload struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Reason   string `json:"reason"`
	ProofURL string `json:"proofUrl"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	student, ok := h.studentForRequest(w, r)
	if !ok {
		return
	}

	var payload leavePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	from, okFrom := v.Date("fromDate", payload.FromDate)
	to, okTo := v.Date("toDate", payload.ToDate)
	v.DateOrder("fromDate", from, "toDate", to)
	v.MinLen("reason", payload.Reason, 10, "must be at least 10 characters")
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okFrom || !okTo {
		return
	}

	id, err := h.Service.Create(r.Context(), student.StudentID, payload.Reason, from, to, payload.ProofURL)
	if err != nil {
		h.failLeave(w, r, err)
		return
	}
	api.Created(w, map[string]int64{"leaveId": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	student, ok := h.studentForRequest(w, r)
	if !ok {
		return
	}
	leaveID, err := strconv.ParseInt(chi.URLParam(r, "leaveID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_leave", "leave id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload leavePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	from, okFrom := v.Date("fromDate", payload.FromDate)
	to, okTo := v.Date("toDate", payload.ToDate)
	v.DateOrder("fromDate", from, "toDate", to)
	v.MinLen("reason", payload.Reason, 10, "must be at least 10 characters")
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okFrom || !okTo {
		return
	}

	if err := h.Service.Edit(r.Context(), leaveID, student.StudentID, payload.Reason, from, to, payload.ProofURL); err != nil {
		h.failLeave(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failLeave(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "leave_not_found", "no such application", reqID)
	case errors.Is(err, leave.ErrReasonTooShort):
		api.Fail(w, http.StatusBadRequest, "reason_too_short", "reason must be at least 10 characters", reqID)
	case errors.Is(err, leave.ErrMissingDates):
		api.Fail(w, http.StatusBadRequest, "missing_dates", "fromDate and toDate are required", reqID)
	case errors.Is(err, leave.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "only the applicant may edit this application", reqID)
	case errors.Is(err, leave.ErrNotEditable):
		api.Fail(w, http.StatusConflict, "not_editable", "only pending applications can be edited", reqID)
	case errors.Is(err, leave.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status must be Pending, Approved or Rejected", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "leave operation failed", reqID)
	}
}

func (h *Handler) handleUploadProof(w http.ResponseWriter, r *http.Request) {
	student, ok := h.studentForRequest(w, r)
	if !ok {
		return
	}
	if h.Storage == nil || !h.Storage.Configured() {
		api.Fail(w, http.StatusServiceUnavailable, "storage_unavailable", "proof storage is not configured", middleware.GetRequestID(r.Context()))
		return
	}

	if err := r.ParseMultipartForm(h.MaxProofBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "could not parse multipart form", middleware.GetRequestID(r.Context()))
		return
	}
	file, header, err := r.FormFile("proof")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_upload", "proof file is required", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	if header.Size > h.MaxProofBytes {
		api.Fail(w, http.StatusRequestEntityTooLarge, "proof_too_large", "proof exceeds the size limit", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.MaxProofBytes+1))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "upload_failed", "failed to read proof", middleware.GetRequestID(r.Context()))
		return
	}
	if int64(len(data)) > h.MaxProofBytes {
		api.Fail(w, http.StatusRequestEntityTooLarge, "proof_too_large", "proof exceeds the size limit", middleware.GetRequestID(r.Context()))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("%d/%s%s", student.StudentID, uuid.NewString(), ext)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Storage.Upload(r.Context(), key, data, contentType)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "upload_failed", "failed to store proof", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"proofUrl": url}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) reviewerForRequest(w http.ResponseWriter, r *http.Request) (core.Faculty, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return core.Faculty{}, false
	}
	faculty, err := h.Core.FacultyByUserID(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			api.Fail(w, http.StatusForbidden, "not_faculty", "only faculty review applications", middleware.GetRequestID(r.Context()))
		} else {
			api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", middleware.GetRequestID(r.Context()))
		}
		return core.Faculty{}, false
	}
	return faculty, true
}

func (h *Handler) handleReviewList(w http.ResponseWriter, r *http.Request) {
	faculty, ok := h.reviewerForRequest(w, r)
	if !ok {
		return
	}

	var sectionID int64
	if raw := r.URL.Query().Get("sectionId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_section", "sectionId must be numeric", middleware.GetRequestID(r.Context()))
			return
		}
		sectionID = id
	}

	apps, err := h.Service.ForReviewer(r.Context(), faculty.FacultyID, sectionID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "failed to list applications", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, apps, middleware.GetRequestID(r.Context()))
}

type transitionPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	faculty, ok := h.reviewerForRequest(w, r)
	if !ok {
		return
	}
	leaveID, err := strconv.ParseInt(chi.URLParam(r, "leaveID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_leave", "leave id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}

	var payload transitionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Transition(r.Context(), leaveID, payload.Status, faculty.FacultyID); err != nil {
		h.failLeave(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": payload.Status}, middleware.GetRequestID(r.Context()))
}
