package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/services"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.DELETE("/notifications/:id", h.Delete)
}

// GetNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	notifications, err := h.notificationService.ListForUser(email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"notifications": notifications}})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	count, err := h.notificationService.UnreadCount(email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkRead(id, email); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// MarkAllAsRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkAllRead(email); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Delete removes one of the caller's notifications
func (h *NotificationHandler) Delete(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.Delete(id, email); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
