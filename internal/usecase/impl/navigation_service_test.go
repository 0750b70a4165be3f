package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNavigationService(t *testing.T) (*navigationService, *mockUC.MockAuthUsecase) {
	auth := mockUC.NewMockAuthUsecase(t)
	srv := NewNavigationService(NavigationServiceParams{
		AuthUsecase: auth,
		Config:      &config.Config{},
	}).(*navigationService)

	return srv, auth
}

func TestNavigationService_Navigate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		sess         *entity.Session
		path         string
		wantRedirect string
		wantName     string
		wantTitle    string
		wantCategory string
	}{
		{
			name:      "home",
			sess:      guestSession(),
			path:      "/",
			wantName:  entity.RouteHome,
			wantTitle: "Tienda | CHIC SHOP",
		},
		{
			name:         "category page with trailing slash",
			sess:         guestSession(),
			path:         "/mujer/?talla=M",
			wantName:     entity.RouteMujer,
			wantTitle:    "Mujer | CHIC SHOP",
			wantCategory: "mujer",
		},
		{
			name:         "protected page redirects guests",
			sess:         guestSession(),
			path:         "/profile?tab=datos",
			wantRedirect: "/?showLogin=true&redirect=%2Fprofile%3Ftab%3Ddatos",
		},
		{
			name:      "protected page for customers",
			sess:      customerSession(),
			path:      "/dashboard",
			wantName:  entity.RouteDashboard,
			wantTitle: "Mi Cuenta | CHIC SHOP",
		},
		{
			name:      "unknown path",
			sess:      guestSession(),
			path:      "/no/such/page",
			wantName:  entity.RouteNotFound,
			wantTitle: "Página no encontrada | CHIC SHOP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, auth := newTestNavigationService(t)
			auth.EXPECT().CheckAuth(ctx, tt.sess).Return()

			nav, err := srv.Navigate(ctx, tt.sess, tt.path)

			require.NoError(t, err)
			if tt.wantRedirect != "" {
				assert.True(t, nav.IsRedirect())
				assert.Equal(t, tt.wantRedirect, nav.RedirectTo)

				return
			}
			require.NotNil(t, nav.Page)
			assert.Equal(t, tt.wantName, nav.Page.Name)
			assert.Equal(t, tt.wantTitle, nav.Page.Title)
			assert.Equal(t, tt.wantCategory, nav.Page.Category)
			assert.Equal(t, tt.sess.IsAuthenticated(), nav.Page.Authenticated)
		})
	}
}

func TestNavigationService_CheckAuthRunsBeforeGuard(t *testing.T) {
	ctx := context.Background()
	srv, auth := newTestNavigationService(t)
	sess := customerSession()

	// The provider rejected the session: CheckAuth clears it.
	auth.EXPECT().CheckAuth(ctx, sess).Run(func(_ context.Context, s *entity.Session) { s.ClearAuth() })

	nav, err := srv.Navigate(ctx, sess, "/dashboard")

	require.NoError(t, err)
	assert.True(t, nav.IsRedirect())
}

func TestNavigationService_UntitledRouteUsesDefaultTitle(t *testing.T) {
	ctx := context.Background()
	auth := mockUC.NewMockAuthUsecase(t)
	srv := NewNavigationService(NavigationServiceParams{
		AuthUsecase: auth,
		Config:      &config.Config{Site: &config.SiteConfig{Name: "OTRA TIENDA"}},
		Routes:      []entity.Route{{Name: "blank", Path: "/blank"}},
	})
	auth.EXPECT().CheckAuth(ctx, mock.AnythingOfType("*entity.Session")).Return()

	nav, err := srv.Navigate(ctx, guestSession(), "/blank")

	require.NoError(t, err)
	assert.Equal(t, "Aplicación | OTRA TIENDA", nav.Page.Title)
}

func TestNavigationService_RejectsAbsoluteURLs(t *testing.T) {
	srv, _ := newTestNavigationService(t)

	_, err := srv.Navigate(context.Background(), guestSession(), "https://evil.example.com/profile")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
