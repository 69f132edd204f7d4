package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Task     *handlers.TaskHandler
	Category *handlers.CategoryHandler
	Account  *handlers.AccountHandler
	Billing  *handlers.BillingHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string) {
	// The auth callback lives outside /api: the auth provider redirects the
	// browser here and we redirect it onward.
	r.GET("/auth/callback", h.Account.AuthCallback)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.GET("/plans", h.Billing.ListPlans)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtSecret))
	{
		authed.GET("/tasks", h.Task.ListForDate)
		authed.POST("/tasks", h.Task.CreateTask)
		authed.PUT("/tasks/:id", h.Task.UpdateTask)
		authed.PATCH("/tasks/:id/completion", h.Task.ToggleCompletion)
		authed.DELETE("/tasks/:id", h.Task.DeleteTask)

		authed.GET("/categories", h.Category.ListCategories)
		authed.POST("/categories", h.Category.CreateCategory)

		authed.POST("/checkout", h.Billing.CreateCheckout)
		authed.GET("/subscription", h.Billing.GetSubscription)
		authed.POST("/subscription/activation", h.Billing.AwaitActivation)

		authed.POST("/signout", h.Account.SignOut)
	}
}
