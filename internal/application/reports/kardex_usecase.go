// Package reports contiene los casos de uso de reportes. El cálculo pesado
// vive en internal/domain/kardex; aquí solo se cargan los documentos, se
// invoca el motor y se mapea el resultado a DTOs.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gestionrd/gestion-api/internal/application/dto"
	"github.com/gestionrd/gestion-api/internal/domain"
	"github.com/gestionrd/gestion-api/internal/domain/entity"
	"github.com/gestionrd/gestion-api/internal/domain/kardex"
	"github.com/gestionrd/gestion-api/internal/domain/repository"
)

// dateLayout formato de fecha de los query params del reporte.
const dateLayout = "2006-01-02"

// KardexUseCase genera el reporte de inventario valorizado (kardex) a costo
// promedio ponderado para una empresa y un rango de fechas.
type KardexUseCase struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) *KardexUseCase {
	return &KardexUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
	}
}

// GetKardex valida la ventana, carga el historial de documentos hasta el fin
// de la ventana y corre el motor. Productos sin movimientos dentro de la
// ventana no aparecen en la respuesta.
func (uc *KardexUseCase) GetKardex(ctx context.Context, companyID string, in dto.KardexRequest) (*dto.KardexReportResponse, error) {
	window, err := parseWindow(in.From, in.To)
	if err != nil {
		return nil, err
	}

	products, err := uc.resolveProducts(ctx, companyID, in.ProductID)
	if err != nil {
		return nil, err
	}

	purchases, err := uc.purchaseRepo.ListWithItems(ctx, companyID, window.To)
	if err != nil {
		return nil, fmt.Errorf("cargar compras: %w", err)
	}
	sales, err := uc.saleRepo.ListWithItems(ctx, companyID, window.To)
	if err != nil {
		return nil, fmt.Errorf("cargar ventas: %w", err)
	}

	started := time.Now()
	sheets, err := kardex.BuildReport(ctx, products, purchases, sales, window)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("report_id", uuid.New().String()).
		Str("company_id", companyID).
		Int("products", len(products)).
		Int("purchases", len(purchases)).
		Int("sales", len(sales)).
		Int("sheets", len(sheets)).
		Dur("elapsed", time.Since(started)).
		Msg("kardex calculado")

	return &dto.KardexReportResponse{
		From:   window.From,
		To:     window.To,
		Sheets: toSheetDTOs(sheets, products),
	}, nil
}

// resolveProducts devuelve el catálogo completo o solo el producto filtrado.
func (uc *KardexUseCase) resolveProducts(ctx context.Context, companyID, productID string) ([]entity.Product, error) {
	if productID == "" {
		products, err := uc.productRepo.ListByCompany(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("cargar catálogo: %w", err)
		}
		return products, nil
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return []entity.Product{*product}, nil
}

// parseWindow interpreta from/to como fechas calendario inclusivas: From al
// inicio del día y To al final del día, para que un documento fechado en
// cualquier momento del día "to" caiga dentro de la ventana.
func parseWindow(from, to string) (kardex.Window, error) {
	f, err := time.Parse(dateLayout, from)
	if err != nil {
		return kardex.Window{}, fmt.Errorf("%w: from=%q", domain.ErrInvalidInput, from)
	}
	t, err := time.Parse(dateLayout, to)
	if err != nil {
		return kardex.Window{}, fmt.Errorf("%w: to=%q", domain.ErrInvalidInput, to)
	}
	w := kardex.Window{
		From: f,
		To:   t.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
	if !w.IsValid() {
		return kardex.Window{}, fmt.Errorf("%w: to anterior a from", domain.ErrInvalidInput)
	}
	return w, nil
}

// toSheetDTOs mapea las hojas del motor a DTOs, enriqueciendo con los datos
// de presentación del producto. Conserva el orden del catálogo.
func toSheetDTOs(sheets []*kardex.Sheet, products []entity.Product) []dto.KardexSheetDTO {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]dto.KardexSheetDTO, 0, len(sheets))
	for _, sheet := range sheets {
		product := byID[sheet.ProductID]
		rows := make([]dto.KardexRowDTO, 0, len(sheet.Entries))
		for _, e := range sheet.Entries {
			rows = append(rows, dto.KardexRowDTO{
				Date:               e.Event.OccurredAt,
				Operation:          string(e.Event.Operation),
				RegistrationNumber: e.Event.RegistrationNumber,
				RegistrationDate:   e.Event.RegistrationDate,
				NCF:                e.Event.NCF,
				CounterpartyRNC:    e.Event.CounterpartyRNC,
				CounterpartyName:   e.Event.CounterpartyName,
				Quantity:           e.Event.Quantity,
				UnitPrice:          e.Event.UnitPrice,
				Amount:             e.Event.Amount,
				BalanceQuantity:    e.Balance.BalanceQuantity,
				BalanceAmount:      e.Balance.BalanceAmount,
				AverageUnitCost:    e.Balance.AverageUnitCost,
			})
		}
		out = append(out, dto.KardexSheetDTO{
			ProductID:   sheet.ProductID,
			ProductCode: product.Code,
			ProductName: product.Name,
			UnitMeasure: product.UnitMeasure,
			Rows:        rows,
			Totals: dto.KardexTotalsDTO{
				PurchasedQuantity:       sheet.Totals.PurchasedQuantity,
				SoldQuantity:            sheet.Totals.SoldQuantity,
				Revenue:                 sheet.Totals.Revenue,
				Cost:                    sheet.Totals.Cost,
				GrossMargin:             sheet.Totals.GrossMargin,
				GrossMarginPctOnRevenue: sheet.Totals.GrossMarginPctOnRevenue,
				GrossMarginPctOnCost:    sheet.Totals.GrossMarginPctOnCost,
				FinalBalanceQuantity:    sheet.Totals.FinalBalanceQuantity,
				FinalBalanceAmount:      sheet.Totals.FinalBalanceAmount,
				FinalAverageCost:        sheet.Totals.FinalAverageCost,
			},
		})
	}
	return out
}
