// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"unigate/internal/delivery/http/middleware"
	"unigate/internal/delivery/http/router/handler"
	"unigate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	PartnerHandler *handler.PartnerHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	partnerHandler *handler.PartnerHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		partnerHandler: params.PartnerHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Healthz)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/google", r.accountHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.GET("/verify-email", r.accountHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.accountHandler.ResendVerification)
	}

	// Auth routes that require a valid access token
	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/state", r.accountHandler.AuthState)
		sessionGroup.POST("/refresh-profile", r.accountHandler.RefreshProfile)
		sessionGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Profile routes for the signed-in user
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.profileHandler.GetProfile)
		meGroup.GET("/referral-qr", r.profileHandler.ReferralQR)
	}

	// Partner routes that require authentication and the "partner" role
	partnerGroup := e.Group("/partners")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireRole(entity.RolePartner.String()))
	{
		partnerGroup.GET("/university", r.partnerHandler.GetUniversity)
		partnerGroup.PUT("/university", r.partnerHandler.UpdateUniversity)
		partnerGroup.POST("/university/logo", r.partnerHandler.UploadLogo)
	}
}
