package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"

	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
)

// ViewVersions expone la versión vigente de una vista; cambia con cada invalidación.
type ViewVersions interface {
	Version(path string) uint64
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceActions *billing.InvoiceActions
	InvoiceQuery   *billing.InvoiceQueryUseCase
	InvoicePDF     *billing.PDFUseCase
	AuthUC         *auth.AuthUseCase
	Views          ViewVersions
	JWTSecret      string
	SessionTTL     time.Duration
	SecureCookie   bool
	// ViewCacheTTL 0 usa 30s.
	ViewCacheTTL time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/api/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL, deps.SecureCookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Dashboard (protegido: Bearer o cookie de sesión)
	dashboard := app.Group("/dashboard", AuthMiddleware(deps.JWTSecret))

	invoiceHandler := NewInvoiceHandler(deps.InvoiceActions, deps.InvoiceQuery, deps.InvoicePDF)
	invoices := dashboard.Group("/invoices")
	invoices.Get("/", invoicesViewCache(deps.Views, deps.ViewCacheTTL), invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id/delete", invoiceHandler.Delete)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	customerHandler := NewCustomerHandler(deps.InvoiceQuery)
	dashboard.Get("/customers", customerHandler.List)
}

// invoicesViewCache cachea el listado de facturas. La clave incluye la versión de la vista,
// así una mutación exitosa hace que la próxima lectura vaya a la base.
func invoicesViewCache(views ViewVersions, ttl time.Duration) fiber.Handler {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return cache.New(cache.Config{
		Expiration: ttl,
		KeyGenerator: func(c *fiber.Ctx) string {
			return viewCacheKey(billing.InvoicesPath, views.Version(billing.InvoicesPath), string(c.Request().URI().QueryString()))
		},
	})
}

func viewCacheKey(path string, version uint64, query string) string {
	return fmt.Sprintf("%s#v%d?%s", path, version, query)
}
