package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/services"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userService   services.UserService
	followService services.FollowService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService, followService services.FollowService) *UserHandler {
	return &UserHandler{userService: userService, followService: followService}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	profile, err := h.userService.GetProfile(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates a user's profile. The service rejects callers that
// are not the profile's owner.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	var photo []byte
	var photoName string

	if file, err := c.FormFile("profile_photo"); err == nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded photo")
		}
		defer src.Close()
		photo, err = io.ReadAll(src)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot read uploaded photo")
		}
		photoName = file.Filename
		req.Name = c.FormValue("name")
		req.Email = c.FormValue("email")
		if bio := c.FormValue("bio"); bio != "" {
			req.Bio = &bio
		}
	} else {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(id, email, req, photo, photoName)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetFollowers lists who follows a user. Open to everyone; entries carry an
// is_following flag relative to the viewer when one is authenticated.
func (h *UserHandler) GetFollowers(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	summaries, err := h.followService.ListFollowers(id, viewerEmail(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": summaries})
}

// GetFollowing lists who a user follows.
func (h *UserHandler) GetFollowing(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	summaries, err := h.followService.ListFollowing(id, viewerEmail(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": summaries})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return uint(id), nil
}
