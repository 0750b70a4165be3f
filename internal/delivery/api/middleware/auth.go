package middleware

import (
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware gates routes on the identity held by the browser session.
// It must run after SessionMiddleware.Load.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate requires a signed-in session with a usable access token,
// refreshing an expired one on the way.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := deliverycontext.GetSession(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrInternalError.WithDetails("session middleware not installed"))
		}
		if !sess.IsAuthenticated() {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		if _, valid := m.auth.GetAuthToken(c.Request().Context(), sess); !valid {
			m.auth.CheckAuth(c.Request().Context(), sess)
			if !sess.IsAuthenticated() {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}
		}

		return next(c)
	}
}

// RequireAdmin rejects sessions outside the admin group.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := deliverycontext.GetSession(c)
		if !ok || !sess.IsAuthenticated() {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}
		if !sess.IsAdmin {
			return errors.WithStack(domainerrors.ErrForbidden.WithDetails("admin group required"))
		}

		return next(c)
	}
}
