package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the customer profile of the signed-in identity.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// GetProfile returns the cached profile; ?refresh=true reloads it.
// A signed-in customer without a profile gets a null payload.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	force, _ := strconv.ParseBool(c.QueryParam("refresh"))

	profile, err := h.profileUC.FetchUserProfile(c.Request().Context(), sess, force)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// CreateProfile creates the profile of the signed-in identity.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.ProfileInput
	if handled, err := bind(c, &req, "profile"); handled {
		return err
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), sess, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// UpdateProfile applies the provided fields to the loaded profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req usecase.ProfileInput
	if handled, err := bind(c, &req, "profile"); handled {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), sess, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
