package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/melo-compras/internal/application/analytics"
	"github.com/jhoicas/melo-compras/internal/application/auth"
	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/application/usecase"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Editor     *procurement.OrderEditor
	Export     *procurement.ExportUseCase
	Conversion *procurement.RequestConversion
	SupplierUC *usecase.SupplierUseCase
	CatalogUC  *usecase.CatalogUseCase
	SiteUC     *usecase.SiteUseCase
	EngineerUC *usecase.EngineerUseCase
	RequestUC  *usecase.RequestUseCase
	UserUC     *usecase.UserUseCase
	Dashboard  *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware())
	protected.Get("/auth/me", authHandler.Me)

	protected.Get("/dashboard/summary", NewDashboardHandler(deps.Dashboard).GetSummary)

	admin := RequireRole(entity.RoleAdmin)
	requesters := RequireRole(entity.RoleAdmin, entity.RoleEngenheiro)

	// Pedidos: cualquier usuario autenticado. Las rutas fijas van antes de /:id.
	orders := protected.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.Editor, deps.Export)
	orders.Get("/", orderHandler.List)
	orders.Get("/export.xlsx", orderHandler.ExportXLSX)
	orders.Post("/draft", orderHandler.NewDraft)
	orders.Post("/draft/recalculate", orderHandler.Recalculate)
	orders.Post("/draft/lines", orderHandler.AddLine)
	orders.Delete("/draft/lines/:index", orderHandler.RemoveLine)
	orders.Patch("/draft/lines/:index", orderHandler.SetLineField)
	orders.Put("/draft/shipping", orderHandler.SetShipping)
	orders.Post("/draft/pdf", orderHandler.DraftPDF)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.Get)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/copy", orderHandler.Copy)
	orders.Get("/:id/pdf", orderHandler.PDF)

	// Cadastros: lectura para todos, escritura solo admin.
	registerResource(protected.Group("/fornecedores"), NewSupplierHandler(deps.SupplierUC), admin)
	registerResource(protected.Group("/items"), NewCatalogHandler(deps.CatalogUC), admin)
	registerResource(protected.Group("/obras"), NewSiteHandler(deps.SiteUC), admin)
	registerResource(protected.Group("/engenheiros"), NewEngineerHandler(deps.EngineerUC), admin)

	// Solicitudes: las crean engenheiros y admin; solo admin las convierte en pedido.
	requests := protected.Group("/solicitacoes")
	requestHandler := NewRequestHandler(deps.RequestUC, deps.Conversion)
	registerResource(requests, requestHandler.ResourceHandler, requesters)
	requests.Post("/:id/pedido", admin, requestHandler.ToOrder)

	// Usuarios (admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}

func registerResource[D any](g fiber.Router, h *ResourceHandler[D], write fiber.Handler) {
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Post("/", write, h.Create)
	g.Put("/:id", write, h.Update)
	g.Delete("/:id", write, h.Delete)
}
