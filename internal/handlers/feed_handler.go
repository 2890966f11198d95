package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/ribbitly/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	micropostService *services.MicropostService
	userRepository   repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(micropostService *services.MicropostService, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		micropostService: micropostService,
		userRepository:   userRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/messages", h.GetDirectMessages)
}

// EnrichedMicropost is a micropost with its author attached
type EnrichedMicropost struct {
	models.Micropost
	Author models.UserCompact `json:"author"`
}

func (h *FeedHandler) enrich(posts []models.Micropost) []EnrichedMicropost {
	userCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedMicropost, len(posts))
	for i, p := range posts {
		enriched[i] = EnrichedMicropost{Micropost: p}
		if author, ok := userCache[p.UserID]; ok {
			enriched[i].Author = author
			continue
		}
		user, err := h.userRepository.GetUserByID(p.UserID)
		if err == nil {
			compact := user.ToCompact()
			userCache[p.UserID] = compact
			enriched[i].Author = compact
		}
	}
	return enriched
}

// GetFeed returns the current user's home timeline
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, limit := parsePagination(c)

	posts, total, err := h.micropostService.GetFeed(currentUserID, page, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"microposts": h.enrich(posts)},
		"meta":    paginationMeta(page, limit, total),
	})
}

// GetDirectMessages returns posts sent privately to the current user
func (h *FeedHandler) GetDirectMessages(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, limit := parsePagination(c)

	posts, total, err := h.micropostService.GetDirectMessages(currentUserID, page, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"microposts": h.enrich(posts)},
		"meta":    paginationMeta(page, limit, total),
	})
}
