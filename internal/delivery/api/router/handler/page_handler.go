package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PageHandler guards storefront page navigations.
type PageHandler struct {
	navigationUC usecase.NavigationUsecase
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(navigationUC usecase.NavigationUsecase) *PageHandler {
	return &PageHandler{navigationUC: navigationUC}
}

// Navigate redirects protected pages to the login prompt for guests and
// otherwise describes the page to render.
func (h *PageHandler) Navigate(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	nav, err := h.navigationUC.Navigate(c.Request().Context(), sess, c.Request().URL.RequestURI())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if nav.IsRedirect() {
		return c.Redirect(http.StatusFound, nav.RedirectTo)
	}

	return response.Success(c, http.StatusOK, nav.Page)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
