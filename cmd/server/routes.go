package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"payme.backend/internal/interfaces/http/handlers"
	"payme.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	invoiceHandler *handlers.InvoiceHandler
	contactHandler *handlers.ContactHandler
	rateLimiter    *middleware.RateLimiter
}

// registerAPIRoutes mounts the /api surface. Every request passes the rate
// limiter first, then the wallet guard, which only intercepts mutating
// methods.
func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	api.Use(d.rateLimiter.Middleware())
	api.Use(middleware.WalletAuthMiddleware())
	{
		invoices := api.Group("/invoices")
		{
			invoices.POST("", middleware.IdempotencyMiddleware(), d.invoiceHandler.CreateInvoice)
			invoices.GET("", d.invoiceHandler.ListInvoices)
			invoices.GET("/:id", d.invoiceHandler.GetInvoice)
			invoices.POST("/:id/pay", d.invoiceHandler.MarkPaid)
			invoices.DELETE("/:id", d.invoiceHandler.DeleteInvoice)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", d.contactHandler.CreateContact)
			contacts.GET("", d.contactHandler.ListContacts)
			contacts.DELETE("/:id", d.contactHandler.DeleteContact)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "payme-backend",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// applyCORSMiddleware allows any origin, matching the original deployment
// where the frontend is served from a separate host
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Wallet-Address, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
