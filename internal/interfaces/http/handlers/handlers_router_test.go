package handlers_test

import (
	"fmt"
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

const (
	testFrontendURL = "http://localhost:5173"
	testChainID     = "42431"
	testRPC         = "https://rpc.moderato.tempo.xyz"

	merchantWallet = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"
	payerWallet    = "0x1111111111111111111111111111111111111111"
	otherWallet    = "0x2222222222222222222222222222222222222222"
)

// newTestRouter assembles the real middleware chain and handlers over an
// in-memory sqlite store
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Invoice{}, &models.Contact{}))

	invoiceRepo := repositories.NewInvoiceRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	uow := repositories.NewUnitOfWork(db)

	invoiceHandler := handlers.NewInvoiceHandler(
		usecases.NewInvoiceUsecase(invoiceRepo, uow, testFrontendURL, testChainID, testRPC))
	contactHandler := handlers.NewContactHandler(
		usecases.NewContactUsecase(contactRepo))

	rl := middleware.NewRateLimiter(10000, time.Minute)

	r := gin.New()
	api := r.Group("/api")
	api.Use(rl.Middleware())
	api.Use(middleware.WalletAuthMiddleware())
	{
		invoices := api.Group("/invoices")
		invoices.POST("", middleware.IdempotencyMiddleware(), invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/pay", invoiceHandler.MarkPaid)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)

		contacts := api.Group("/contacts")
		contacts.POST("", contactHandler.CreateContact)
		contacts.GET("", contactHandler.ListContacts)
		contacts.DELETE("/:id", contactHandler.DeleteContact)
	}
	return r
}
