package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/analytics"
	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/lifecycle"
	"blockfix-backend/internal/mirror"
	"blockfix-backend/internal/notification"
	"blockfix-backend/internal/repo"
)

// Deps are the collaborators the API handlers depend on. Notify and
// WebPush may be nil when push is not configured.
type Deps struct {
	Properties    *repo.PropertyRepo
	Maintenance   *repo.MaintenanceRepo
	Contractors   *repo.ContractorRepo
	Reports       *repo.ReportRepo
	Settings      *repo.SettingsRepo
	Subscriptions *repo.SubscriptionRepo
	Lifecycle     *lifecycle.Engine
	ReportGen     *analytics.Generator
	Mirror        mirror.Client
	Notify        *notification.WorkerPool
	WebPush       *webpush.Options
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	Deps
}

// NewHandler creates a new API handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

// notify dispatches an event if the worker pool is configured.
func (h *Handler) notify(kind notification.EventKind, message string) {
	if h.Notify == nil {
		return
	}
	h.Notify.Dispatch(notification.Event{Kind: kind, Message: message})
}

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrNotApplicable):
		status = http.StatusConflict
	case apperr.IsValidation(err):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
