package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionrd/gestion-api/internal/application/reports"
	"github.com/gestionrd/gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	KardexUC  *reports.KardexUseCase
	KardexPDF *reports.KardexPDFUseCase
	Exporter  reports.ExcelExporter
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido, solo lectura: el catálogo se administra en el
	// módulo de maestros)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	kardexHandler := NewKardexHandler(deps.KardexUC, deps.KardexPDF, deps.Exporter)
	reportsGroup.Get("/kardex", kardexHandler.GetKardex)
	reportsGroup.Get("/kardex/export", kardexHandler.ExportKardex)
	reportsGroup.Get("/kardex/:productId/pdf", kardexHandler.GetKardexPDF)
}
