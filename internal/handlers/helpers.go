package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/models"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims stored by the auth middleware. Returns 0 when unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// parsePagination reads page/limit query params with sane bounds.
func parsePagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return page, limit
}

// paginationMeta builds the standard pagination envelope.
func paginationMeta(page, limit int, totalItems int64) echo.Map {
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	return echo.Map{
		"currentPage":     page,
		"totalPages":      totalPages,
		"totalItems":      totalItems,
		"itemsPerPage":    limit,
		"hasNextPage":     page < totalPages,
		"hasPreviousPage": page > 1,
	}
}

// compactUsers maps users to their compact representation.
func compactUsers(users []models.User) []models.UserCompact {
	compact := make([]models.UserCompact, len(users))
	for i := range users {
		compact[i] = users[i].ToCompact()
	}
	return compact
}

// toHTTPError translates service-layer errors into echo HTTP errors.
func toHTTPError(err error) error {
	switch {
	case apperrors.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperrors.IsAuthorization(err):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
