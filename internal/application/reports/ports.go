package reports

import (
	"context"
	"time"

	"github.com/gestionrd/gestion-api/internal/application/dto"
)

// KardexPDFGenerator puerto de salida para renderizar el kardex de un
// producto como PDF (implementado en infrastructure/pdf con Maroto).
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, sheet dto.KardexSheetDTO, from, to time.Time) ([]byte, error)
}

// ExcelExporter puerto de salida para exportar el reporte completo a Excel.
// La implementación actual es un stub que responde domain.ErrNotImplemented;
// el puerto existe para que el front pueda descubrir la ruta sin romperse.
type ExcelExporter interface {
	ExportKardex(ctx context.Context, report *dto.KardexReportResponse) ([]byte, error)
}
