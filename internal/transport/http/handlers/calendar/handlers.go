package calendarhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/calendar"
	"collegeerp/internal/transport/http/api"
	"collegeerp/internal/transport/http/middleware"
	"collegeerp/internal/transport/http/shared"
)

type Handler struct {
	Service *calendar.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *calendar.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermCalendarRead, h.Perms)).Get("/events", h.handleEvents)
		r.With(middleware.RequirePermission(auth.PermCalendarRead, h.Perms)).Get("/day", h.handleDay)
		r.With(middleware.RequirePermission(auth.PermCalendarRead, h.Perms)).Get("/highlights", h.handleHighlights)
		r.With(middleware.RequirePermission(auth.PermCalendarWrite, h.Perms)).Post("/events", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermCalendarWrite, h.Perms)).Put("/events/{eventID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermCalendarWrite, h.Perms)).Delete("/events/{eventID}", h.handleDelete)
	})
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.Events(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to list events", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, events, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDay(w http.ResponseWriter, r *http.Request) {
	day, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || day.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	view, err := h.Service.Day(r.Context(), day)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to build day view", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, view, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHighlights(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a positive number", middleware.GetRequestID(r.Context()))
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must be 1-12", middleware.GetRequestID(r.Context()))
		return
	}

	days, err := h.Service.Highlights(r.Context(), year, time.Month(month))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to compute highlights", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"year": year, "month": month, "days": days}, middleware.GetRequestID(r.Context()))
}

type eventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (calendar.Event, bool) {
	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return calendar.Event{}, false
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "is required")
	start, okStart := v.Date("startDate", payload.StartDate)
	end, okEnd := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okStart || !okEnd {
		return calendar.Event{}, false
	}

	return calendar.Event{
		Title:       payload.Title,
		Description: payload.Description,
		StartDate:   start,
		EndDate:     end,
	}, true
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	id, err := h.Service.Create(r.Context(), event)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_create_failed", "failed to create event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]int64{"eventId": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_event", "event id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	event.EventID = eventID

	if err := h.Service.Update(r.Context(), event); err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "event_not_found", "no such event", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "event_update_failed", "failed to update event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_event", "event id must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "event_not_found", "no such event", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "event_delete_failed", "failed to delete event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
