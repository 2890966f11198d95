package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/ribbitly/backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	relationshipService *services.RelationshipService
	relationshipRepo    repositories.RelationshipRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(relationshipService *services.RelationshipService, relationshipRepo repositories.RelationshipRepository) *FollowHandler {
	return &FollowHandler{
		relationshipService: relationshipService,
		relationshipRepo:    relationshipRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.relationshipService.Follow(c.Request().Context(), currentUserID, uint(targetID)); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.relationshipService.Unfollow(currentUserID, uint(targetID)); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowers lists the users following the given user
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.relationshipRepo.GetFollowers(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"users": compactUsers(users)}})
}

// GetFollowing lists the users the given user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.relationshipRepo.GetFollowed(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"users": compactUsers(users)}})
}
