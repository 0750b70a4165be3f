// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	CatalogHandler    *handler.CatalogHandler
	WishlistHandler   *handler.WishlistHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	StorageHandler    *handler.StorageHandler
	ToastHandler      *handler.ToastHandler
	PageHandler       *handler.PageHandler
	SessionMiddleware *middleware.SessionMiddleware
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	catalogHandler    *handler.CatalogHandler
	wishlistHandler   *handler.WishlistHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	storageHandler    *handler.StorageHandler
	toastHandler      *handler.ToastHandler
	pageHandler       *handler.PageHandler
	sessionMiddleware *middleware.SessionMiddleware
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		catalogHandler:    params.CatalogHandler,
		wishlistHandler:   params.WishlistHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		storageHandler:    params.StorageHandler,
		toastHandler:      params.ToastHandler,
		pageHandler:       params.PageHandler,
		sessionMiddleware: params.SessionMiddleware,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate

	// Everything below runs with the browser session loaded.
	apiV1 := e.Group("/api/v1", r.sessionMiddleware.Load)

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/new-password", r.authHandler.CompleteNewPassword)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/confirm", r.authHandler.ConfirmSignUp)
		authGroup.POST("/finish-registration", r.authHandler.FinishRegistration)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me)
		authGroup.GET("/token", r.authHandler.Token)
		authGroup.GET("/identifiers", r.authHandler.Identifiers)
	}

	profileGroup := apiV1.Group("/profile", authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	// Catalog reads are public; inactive products are filtered per role.
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/categories", r.catalogHandler.ListCategories)
	apiV1.GET("/brands", r.catalogHandler.ListBrands)

	wishlistGroup := apiV1.Group("/wishlist", authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("", r.wishlistHandler.Add)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.Remove)
	}

	apiV1.GET("/cart", r.cartHandler.GetActiveCart, authenticate)

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/mine", r.orderHandler.ListMyOrders, authenticate)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/payment-qr", r.orderHandler.PaymentQR)
	}

	// The storage policy decides per prefix and role.
	filesGroup := apiV1.Group("/files")
	{
		filesGroup.PUT("/*", r.storageHandler.Upload)
		filesGroup.GET("/*", r.storageHandler.SignedURL)
		filesGroup.DELETE("/*", r.storageHandler.Delete)
	}

	toastsGroup := apiV1.Group("/toasts")
	{
		toastsGroup.GET("", r.toastHandler.List)
		toastsGroup.POST("", r.toastHandler.Show)
		toastsGroup.DELETE("/:id", r.toastHandler.Remove)
	}

	adminGroup := apiV1.Group("/admin", authenticate, r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	// Any other path is a storefront page and goes through the navigation guard.
	e.GET("/*", r.pageHandler.Navigate, r.sessionMiddleware.Load)
}
