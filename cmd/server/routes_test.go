package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"payme.backend/internal/infrastructure/models"
	"payme.backend/internal/infrastructure/repositories"
	"payme.backend/internal/interfaces/http/handlers"
	"payme.backend/internal/interfaces/http/middleware"
	"payme.backend/internal/usecases"
)

func newRouterForTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Invoice{}, &models.Contact{}))

	invoiceRepo := repositories.NewInvoiceRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	uow := repositories.NewUnitOfWork(db)

	r := gin.New()
	registerAPIRoutes(r, routeDeps{
		invoiceHandler: handlers.NewInvoiceHandler(
			usecases.NewInvoiceUsecase(invoiceRepo, uow, "http://localhost:5173", "42431", "https://rpc.moderato.tempo.xyz")),
		contactHandler: handlers.NewContactHandler(
			usecases.NewContactUsecase(contactRepo)),
		rateLimiter: middleware.NewRateLimiter(3, time.Minute),
	})
	return r
}

func TestRegisterAPIRoutes_AllEndpointsMounted(t *testing.T) {
	r := newRouterForTest(t)

	expected := map[string]string{
		"POST /api/invoices":         "",
		"GET /api/invoices":          "",
		"GET /api/invoices/:id":      "",
		"POST /api/invoices/:id/pay": "",
		"DELETE /api/invoices/:id":   "",
		"POST /api/contacts":         "",
		"GET /api/contacts":          "",
		"DELETE /api/contacts/:id":   "",
	}
	for _, route := range r.Routes() {
		delete(expected, route.Method+" "+route.Path)
	}
	require.Empty(t, expected, "missing routes: %v", expected)
}

func TestRegisterAPIRoutes_RateLimiterGatesEverything(t *testing.T) {
	r := newRouterForTest(t)

	// limiter allows 3 per minute, including unauthenticated reads
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// the rate limiter runs before the wallet guard
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/invoices", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}
