package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestionrd/gestion-api/internal/application/dto"
	"github.com/gestionrd/gestion-api/internal/application/reports"
	"github.com/gestionrd/gestion-api/internal/domain"
	"github.com/gestionrd/gestion-api/internal/domain/kardex"
)

// KardexHandler maneja las peticiones HTTP del reporte de inventario
// valorizado (protegido).
type KardexHandler struct {
	kardexUC *reports.KardexUseCase
	pdfUC    *reports.KardexPDFUseCase
	exporter reports.ExcelExporter
}

// NewKardexHandler construye el handler.
func NewKardexHandler(kardexUC *reports.KardexUseCase, pdfUC *reports.KardexPDFUseCase, exporter reports.ExcelExporter) *KardexHandler {
	return &KardexHandler{kardexUC: kardexUC, pdfUC: pdfUC, exporter: exporter}
}

// GetKardex godoc
// @Summary      Reporte de inventario valorizado (kardex)
// @Description  Devuelve, por producto, cada compra y venta del rango con su
//
//	balance posterior en cantidad, monto y costo promedio, más los
//	totales del período. Los productos sin movimientos en el rango
//	se omiten.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  true   "Fecha inicial (YYYY-MM-DD, inclusiva)"
// @Param        to          query  string  true   "Fecha final (YYYY-MM-DD, inclusiva)"
// @Param        product_id  query  string  false  "Limitar a un producto (UUID)"
// @Success      200  {object}  dto.KardexReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/kardex [get]
func (h *KardexHandler) GetKardex(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.KardexRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	report, err := h.kardexUC.GetKardex(c.Context(), companyID, in)
	if err != nil {
		return kardexError(c, err)
	}
	return c.JSON(report)
}

// GetKardexPDF godoc
// @Summary      Kardex de un producto en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        productId  path   string  true  "ID del producto"
// @Param        from       query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        to         query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/kardex/{productId}/pdf [get]
func (h *KardexHandler) GetKardexPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("productId")
	var in dto.KardexRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	pdfBytes, err := h.pdfUC.GetKardexPDF(c.Context(), companyID, productID, in)
	if err != nil {
		return kardexError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}

// ExportKardex godoc
// @Summary      Exportar el kardex a Excel (no implementado)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/reports/kardex/export [get]
func (h *KardexHandler) ExportKardex(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if _, err := h.exporter.ExportKardex(c.Context(), nil); err != nil {
		return kardexError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// kardexError mapea errores del caso de uso a respuestas HTTP.
func kardexError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado o sin movimientos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrNotImplemented):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "export a Excel aún no disponible"})
	case errors.Is(err, kardex.ErrInvalidEvent):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_EVENT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
