package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/middleware"
	"github.com/skillshare-platform/backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService services.FollowService
	userService   services.UserService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService services.FollowService, userService services.UserService) *FollowHandler {
	return &FollowHandler{followService: followService, userService: userService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/is-following/:target", h.IsFollowing)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	actor, err := h.userService.Session(middleware.PrincipalFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	targetID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.followService.Follow(actor.ID, targetID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	actor, err := h.userService.Session(middleware.PrincipalFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	targetID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(actor.ID, targetID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// IsFollowing reports whether the subject follows the target. Only the
// subject may ask.
func (h *FollowHandler) IsFollowing(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	subjectID, err := parseID(c)
	if err != nil {
		return err
	}
	targetID, err := strconv.ParseUint(c.Param("target"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	following, err := h.followService.IsFollowing(email, subjectID, uint(targetID))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": following}})
}
