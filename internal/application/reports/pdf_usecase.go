package reports

import (
	"context"

	"github.com/gestionrd/gestion-api/internal/application/dto"
	"github.com/gestionrd/gestion-api/internal/domain"
)

// KardexPDFUseCase genera la representación PDF del kardex de un producto.
type KardexPDFUseCase struct {
	kardexUC  *KardexUseCase
	generator KardexPDFGenerator
}

// NewKardexPDFUseCase construye el caso de uso.
func NewKardexPDFUseCase(kardexUC *KardexUseCase, generator KardexPDFGenerator) *KardexPDFUseCase {
	return &KardexPDFUseCase{kardexUC: kardexUC, generator: generator}
}

// GetKardexPDF calcula el kardex del producto indicado y lo renderiza.
// Devuelve ErrNotFound si el producto no tiene movimientos en la ventana
// (el reporte omite productos sin eventos, no emite hojas en ceros).
func (uc *KardexPDFUseCase) GetKardexPDF(ctx context.Context, companyID, productID string, in dto.KardexRequest) ([]byte, error) {
	in.ProductID = productID
	report, err := uc.kardexUC.GetKardex(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	if len(report.Sheets) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateKardexPDF(ctx, report.Sheets[0], report.From, report.To)
}
