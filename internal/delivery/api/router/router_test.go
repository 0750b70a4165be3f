package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

type routerFixtures struct {
	echo     *echo.Echo
	sessions *mockRepo.MockSessionRepository
	auth     *mockUC.MockAuthUsecase
}

// createTestRouter wires the real router, session middleware and page guard.
// Only the session store and the auth usecase are mocked.
func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := mockRepo.NewMockSessionRepository(t)
	auth := mockUC.NewMockAuthUsecase(t)
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "sf_session", TTL: time.Hour}}

	r := NewRouter(RouterParams{
		PageHandler: handler.NewPageHandler(impl.NewNavigationService(impl.NavigationServiceParams{
			AuthUsecase: auth,
			Config:      cfg,
		})),
		SessionMiddleware: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
			Lc:     fxtest.NewLifecycle(t),
			Repo:   sessions,
			Config: cfg,
			Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(auth),
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return routerFixtures{echo: e, sessions: sessions, auth: auth}
}

func (fx routerFixtures) get(target, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "sf_session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_GuardedPage(t *testing.T) {
	t.Run("guest is sent to the login prompt", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.auth.EXPECT().CheckAuth(mock.Anything, mock.AnythingOfType("*entity.Session")).Return()

		rec := fx.get("/profile", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/?showLogin=true&redirect=%2Fprofile", rec.Header().Get(echo.HeaderLocation))
		// An untouched guest session is neither stored nor handed out.
		assert.Empty(t, rec.Result().Cookies())
		fx.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("signed-in customer gets the page", func(t *testing.T) {
		fx := createTestRouter(t)
		stored := entity.NewSession("sess-1", time.Now(), time.Hour)
		stored.User = &entity.AuthUser{UserID: "sub-1", LoginID: "ana@example.com"}

		fx.sessions.EXPECT().Find(mock.Anything, "sess-1").Return(stored, nil)
		fx.auth.EXPECT().CheckAuth(mock.Anything, stored).Return()
		fx.sessions.EXPECT().Save(mock.Anything, stored).Return(nil)

		rec := fx.get("/profile", "sess-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":true`)
		assert.Equal(t, "sess-1", rec.Result().Cookies()[0].Value)
	})
}

func TestRouter_GuestAPIRequiresLogin(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.get("/api/v1/profile", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRouter_HealthSkipsSessions(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.get("/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	fx.sessions.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}
