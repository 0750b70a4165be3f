package impl

import (
	"context"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	auth        usecase.AuthUsecase
	routes      []entity.Route
	siteName    string
	titleBase   string
	landingPath string
}

// NavigationServiceParams holds dependencies for NavigationService, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	AuthUsecase usecase.AuthUsecase
	Config      *config.Config
	Routes      []entity.Route `optional:"true"`
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	routes := params.Routes
	if len(routes) == 0 {
		routes = entity.DefaultRoutes()
	}

	srv := &navigationService{
		auth:        params.AuthUsecase,
		routes:      routes,
		siteName:    "CHIC SHOP",
		titleBase:   "Aplicación",
		landingPath: "/",
	}
	if site := params.Config.Site; site != nil {
		if site.Name != "" {
			srv.siteName = site.Name
		}
		if site.DefaultTitle != "" {
			srv.titleBase = site.DefaultTitle
		}
		if site.LandingPath != "" {
			srv.landingPath = site.LandingPath
		}
	}

	return srv
}

// Navigate runs the page guard: it revalidates the session, then either
// redirects to the login prompt or describes the page to render.
func (srv *navigationService) Navigate(ctx context.Context, sess *entity.Session, fullPath string) (*entity.Navigation, error) {
	if fullPath == "" {
		fullPath = "/"
	}
	parsed, err := url.Parse(fullPath)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid navigation path")
	}

	route := srv.match(parsed.Path)
	title := route.Title
	if title == "" {
		title = srv.titleBase
	}

	srv.auth.CheckAuth(ctx, sess)

	if route.RequiresAuth && !sess.IsAuthenticated() {
		return &entity.Navigation{
			RedirectTo: srv.landingPath + "?showLogin=true&redirect=" + url.QueryEscape(fullPath),
		}, nil
	}

	return &entity.Navigation{
		Page: &entity.PageDescriptor{
			Name:          route.Name,
			Path:          parsed.Path,
			Title:         title + " | " + srv.siteName,
			Category:      route.Category,
			Authenticated: sess.IsAuthenticated(),
			IsAdmin:       sess.IsAdmin,
			UserEmail:     sess.UserEmail(),
		},
	}, nil
}

// match finds the route for a path. The "*" route catches everything else.
func (srv *navigationService) match(path string) entity.Route {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	var fallback *entity.Route
	for i := range srv.routes {
		route := &srv.routes[i]
		if route.Path == "*" {
			fallback = route

			continue
		}
		if strings.EqualFold(route.Path, path) {
			return *route
		}
	}
	if fallback != nil {
		return *fallback
	}

	return entity.Route{Name: entity.RouteNotFound}
}
