// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	BuyerHandler        *handler.BuyerHandler
	AuthHandler         *handler.AuthHandler
	PublicationHandler  *handler.PublicationHandler
	ChatHandler         *handler.ChatHandler
	PurchaseHandler     *handler.PurchaseHandler
	RealtimeHandler     *handler.RealtimeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	buyerHandler        *handler.BuyerHandler
	authHandler         *handler.AuthHandler
	publicationHandler  *handler.PublicationHandler
	chatHandler         *handler.ChatHandler
	purchaseHandler     *handler.PurchaseHandler
	realtimeHandler     *handler.RealtimeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		buyerHandler:        params.BuyerHandler,
		authHandler:         params.AuthHandler,
		publicationHandler:  params.PublicationHandler,
		chatHandler:         params.ChatHandler,
		purchaseHandler:     params.PurchaseHandler,
		realtimeHandler:     params.RealtimeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Notification routes keep their historical paths and {success, ...} bodies
	e.GET("/:userId/notifications", r.notificationHandler.ListForUser)
	notificationsGroup := e.Group("/notifications")
	{
		notificationsGroup.DELETE("/:id", r.notificationHandler.Delete)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkAsRead)
	}

	// Realtime
	e.GET("/ws/notifications/:userId", r.realtimeHandler.Notifications)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	buyersGroup := apiV1.Group("/buyers")
	{
		buyersGroup.POST("", r.buyerHandler.Register)
		buyersGroup.GET("/:id", r.buyerHandler.Get)
		buyersGroup.PUT("/:id", r.buyerHandler.Update)
		buyersGroup.DELETE("/:id", r.buyerHandler.Delete)
		buyersGroup.PUT("/:id/avatar", r.buyerHandler.UpdateAvatar)
		buyersGroup.POST("/:id/seller", r.buyerHandler.PromoteToSeller)
		buyersGroup.DELETE("/:id/seller", r.buyerHandler.RemoveSeller)
		buyersGroup.GET("/:id/chats", r.chatHandler.ListForBuyer)
	}

	publicationsGroup := apiV1.Group("/publications")
	{
		publicationsGroup.GET("", r.publicationHandler.List)
		publicationsGroup.GET("/paginated", r.publicationHandler.ListPaginated)
		publicationsGroup.GET("/latest", r.publicationHandler.Latest)
		publicationsGroup.GET("/:id", r.publicationHandler.Get)
		publicationsGroup.GET("/:id/seller", r.publicationHandler.Seller)
		publicationsGroup.GET("/:id/qr", r.publicationHandler.QRCode)
		publicationsGroup.POST("", r.publicationHandler.Create)
		publicationsGroup.PUT("/:id", r.publicationHandler.Update)
		publicationsGroup.PATCH("/:id/image", r.publicationHandler.ReplaceImage)
		publicationsGroup.DELETE("/:id", r.publicationHandler.Delete)
	}

	chatsGroup := apiV1.Group("/chats")
	{
		chatsGroup.POST("", r.chatHandler.Open)
		chatsGroup.GET("/:id/messages", r.chatHandler.ListMessages)
		chatsGroup.POST("/:id/messages", r.chatHandler.SendMessage)
	}

	apiV1.POST("/purchases", r.purchaseHandler.Complete)
}
