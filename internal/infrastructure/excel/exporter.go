// Package excel contiene el exportador del kardex a Excel.
package excel

import (
	"context"

	"github.com/gestionrd/gestion-api/internal/application/dto"
	"github.com/gestionrd/gestion-api/internal/domain"
)

// StubExporter implementa reports.ExcelExporter sin generar nada: el export a
// Excel se resuelve hoy en el front y este endpoint responde 501 hasta que se
// migre al backend.
type StubExporter struct{}

// NewStubExporter construye el exportador.
func NewStubExporter() *StubExporter { return &StubExporter{} }

// ExportKardex siempre devuelve ErrNotImplemented.
func (e *StubExporter) ExportKardex(_ context.Context, _ *dto.KardexReportResponse) ([]byte, error) {
	return nil, domain.ErrNotImplemented
}
