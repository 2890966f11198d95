package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/repositories"
	"gorm.io/gorm"
)

// PreferenceHandler handles notification-preference HTTP requests
type PreferenceHandler struct {
	preferenceRepo repositories.PreferenceRepository
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(preferenceRepo repositories.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{preferenceRepo: preferenceRepo}
}

// RegisterPreferenceRoutes registers preference routes
func (h *PreferenceHandler) RegisterPreferenceRoutes(g *echo.Group) {
	g.GET("/preferences", h.GetPreference)
	g.PUT("/preferences", h.UpdatePreference)
}

// GetPreference returns the current user's notification preference
func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	pref, err := h.preferenceRepo.GetByUserID(currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No row means the default applies.
			return c.JSON(http.StatusOK, echo.Map{
				"success": true,
				"data":    echo.Map{"receive_follower_notification": true},
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"receive_follower_notification": pref.ReceiveFollowerNotification},
	})
}

// UpdatePreference updates the current user's notification preference
func (h *PreferenceHandler) UpdatePreference(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pref, err := h.preferenceRepo.GetByUserID(currentUserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		pref = &models.NotificationPreference{UserID: currentUserID}
		pref.ReceiveFollowerNotification = *req.ReceiveFollowerNotification
		if err := h.preferenceRepo.CreatePreference(pref); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	} else {
		pref.ReceiveFollowerNotification = *req.ReceiveFollowerNotification
		if err := h.preferenceRepo.UpdatePreference(pref); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"receive_follower_notification": pref.ReceiveFollowerNotification},
	})
}
