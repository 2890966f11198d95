package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/ribbitly/backend/internal/services"
	"gorm.io/gorm"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userService      *services.UserService
	userRepository   repositories.UserRepository
	relationshipRepo repositories.RelationshipRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, userRepo repositories.UserRepository, relationshipRepo repositories.RelationshipRepository) *UserHandler {
	return &UserHandler{
		userService:      userService,
		userRepository:   userRepo,
		relationshipRepo: relationshipRepo,
	}
}

// RegisterUserRoutes registers user profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/search", h.SearchUsers)
	g.DELETE("/users/:id", h.DeleteUser)
}

// GetUser returns a user profile with follower/following counts
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followers, _ := h.relationshipRepo.GetFollowersCount(user.ID)
	following, _ := h.relationshipRepo.GetFollowedCount(user.ID)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"user":            user.ToCompact(),
			"followers_count": followers,
			"following_count": following,
		},
	})
}

// SearchUsers searches users by name or username
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"users": compactUsers(users)}})
}

// DeleteUser deletes the current user's account and all dependent data
func (h *UserHandler) DeleteUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.userService.DeleteAccount(uint(userID), currentUserID); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
