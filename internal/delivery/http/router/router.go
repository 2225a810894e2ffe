// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	DonationHandler    *handler.DonationHandler
	ProductHandler     *handler.ProductHandler
	DiscoveryHandler   *handler.DiscoveryHandler
	LeaderboardHandler *handler.LeaderboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	donationHandler    *handler.DonationHandler
	productHandler     *handler.ProductHandler
	discoveryHandler   *handler.DiscoveryHandler
	leaderboardHandler *handler.LeaderboardHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		donationHandler:    params.DonationHandler,
		productHandler:     params.ProductHandler,
		discoveryHandler:   params.DiscoveryHandler,
		leaderboardHandler: params.LeaderboardHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Listing and read endpoints are public; mutations require a JWT and,
// where noted, a vendor or ngo role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authed := r.authMiddleware.Authenticate
	vendorOnly := r.authMiddleware.RequireRole(string(entity.RoleVendor))
	ngoOnly := r.authMiddleware.RequireRole(string(entity.RoleNGO))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Donation routes. The static /vendor and /ngo segments must not collide
	// with the :id parameter, echo resolves static segments first.
	donationGroup := e.Group("/donations")
	{
		donationGroup.GET("", r.discoveryHandler.ListDonations)
		donationGroup.GET("/:id", r.donationHandler.Get)
		donationGroup.GET("/:id/qr", r.donationHandler.PickupQR, authed)

		donationGroup.POST("", r.donationHandler.Create, authed, vendorOnly)
		donationGroup.PUT("/:id", r.donationHandler.Update, authed, vendorOnly)
		donationGroup.DELETE("/:id", r.donationHandler.Delete, authed, vendorOnly)

		donationGroup.POST("/:id/request", r.donationHandler.Request, authed, ngoOnly)
		donationGroup.POST("/:id/confirm", r.donationHandler.Confirm, authed, vendorOnly)
		donationGroup.POST("/:id/complete", r.donationHandler.Complete, authed, vendorOnly)

		donationGroup.GET("/vendor/mine", r.donationHandler.VendorDonations, authed, vendorOnly)
		donationGroup.GET("/ngo/requests", r.donationHandler.NGORequests, authed, ngoOnly)
	}

	// Product routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.discoveryHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("/:id/inquire", r.productHandler.Inquire)

		productGroup.POST("", r.productHandler.Create, authed, vendorOnly)
		productGroup.PUT("/:id", r.productHandler.Update, authed, vendorOnly)
		productGroup.DELETE("/:id", r.productHandler.Delete, authed, vendorOnly)

		productGroup.GET("/vendor/mine", r.productHandler.VendorProducts, authed, vendorOnly)
	}

	// User discovery, leaderboard and profile routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("/vendors/nearby", r.discoveryHandler.NearbyVendors)
		userGroup.GET("/ngos/nearby", r.discoveryHandler.NearbyNGOs)
		userGroup.GET("/leaderboard", r.leaderboardHandler.Leaderboard)

		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.GET("/:id/stats", r.userHandler.GetStats, r.authMiddleware.OptionalAuthenticate)
	}
}
