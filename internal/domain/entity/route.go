package entity

// Route is one entry of the storefront page table.
type Route struct {
	Name         string
	Path         string
	Title        string
	Category     string
	RequiresAuth bool
}

// Route names.
const (
	RouteHome       = "home"
	RouteTienda     = "tienda"
	RouteNovedades  = "novedades"
	RouteMujer      = "mujer"
	RouteHombre     = "hombre"
	RouteAccesorios = "accesorios"
	RouteDashboard  = "dashboard"
	RouteProfile    = "profile"
	RouteNotFound   = "not-found"
)

// DefaultRoutes is the storefront page table. The not-found route must be last.
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Path: "/", Title: "Tienda"},
		{Name: RouteTienda, Path: "/tienda", Title: "Tienda"},
		{Name: RouteNovedades, Path: "/novedades", Title: "Novedades"},
		{Name: RouteMujer, Path: "/mujer", Title: "Mujer", Category: "mujer"},
		{Name: RouteHombre, Path: "/hombre", Title: "Hombre", Category: "hombre"},
		{Name: RouteAccesorios, Path: "/accesorios", Title: "Accesorios", Category: "accesorios"},
		{Name: RouteDashboard, Path: "/dashboard", Title: "Mi Cuenta", RequiresAuth: true},
		{Name: RouteProfile, Path: "/profile", Title: "Mi Perfil", RequiresAuth: true},
		{Name: RouteNotFound, Path: "*", Title: "Página no encontrada"},
	}
}

// PageDescriptor is what the storefront shell needs to render a page.
type PageDescriptor struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Title         string `json:"title"`
	Category      string `json:"category,omitempty"`
	Authenticated bool   `json:"authenticated"`
	IsAdmin       bool   `json:"isAdmin"`
	UserEmail     string `json:"userEmail,omitempty"`
}

// Navigation is the guard decision: either a redirect or a page to render.
type Navigation struct {
	RedirectTo string
	Page       *PageDescriptor
}

// IsRedirect reports whether navigation was denied and redirected.
func (n *Navigation) IsRedirect() bool {
	return n.RedirectTo != ""
}
