package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/services"
)

// ProgressHandler handles progress update HTTP requests
type ProgressHandler struct {
	progressService services.ProgressService
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// RegisterListRoute registers the viewer-aware listing, open to anonymous
// callers.
func (h *ProgressHandler) RegisterListRoute(g *echo.Group) {
	g.GET("/progress-updates", h.List)
}

// RegisterProgressRoutes registers the authenticated mutation routes.
func (h *ProgressHandler) RegisterProgressRoutes(g *echo.Group) {
	g.POST("/progress-updates", h.Create)
	g.PUT("/progress-updates/:id", h.Update)
	g.DELETE("/progress-updates/:id", h.Delete)
}

// List returns the updates visible to the current viewer, or public ones for
// anonymous requests.
func (h *ProgressHandler) List(c echo.Context) error {
	views, err := h.progressService.List(viewerEmail(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, views)
}

// Create creates a progress update owned by the caller.
func (h *ProgressHandler) Create(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req models.CreateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.progressService.Create(email, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, view)
}

// Update modifies a progress update owned by the caller.
func (h *ProgressHandler) Update(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.UpdateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.progressService.Update(id, email, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// Delete removes a progress update owned by the caller.
func (h *ProgressHandler) Delete(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.progressService.Delete(id, email); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
