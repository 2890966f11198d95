package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/services"
)

// MicropostHandler handles micropost-related HTTP requests
type MicropostHandler struct {
	micropostService *services.MicropostService
}

// NewMicropostHandler creates a new MicropostHandler
func NewMicropostHandler(micropostService *services.MicropostService) *MicropostHandler {
	return &MicropostHandler{micropostService: micropostService}
}

// RegisterMicropostRoutes registers micropost-related routes
func (h *MicropostHandler) RegisterMicropostRoutes(g *echo.Group) {
	g.POST("/microposts", h.CreateMicropost)
	g.DELETE("/microposts/:id", h.DeleteMicropost)
	g.GET("/users/:id/microposts", h.GetUserMicroposts)
}

// CreateMicropost creates a new micropost for the current user
func (h *MicropostHandler) CreateMicropost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateMicropostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.micropostService.CreateMicropost(currentUserID, req.Content)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": post})
}

// DeleteMicropost deletes one of the current user's microposts
func (h *MicropostHandler) DeleteMicropost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid micropost ID")
	}

	if err := h.micropostService.DeleteMicropost(uint(postID), currentUserID); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetUserMicroposts returns a user's public microposts (direct messages excluded)
func (h *MicropostHandler) GetUserMicroposts(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit := parsePagination(c)

	posts, total, err := h.micropostService.GetPublicPosts(uint(userID), page, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"microposts": posts},
		"meta":    paginationMeta(page, limit, total),
	})
}
