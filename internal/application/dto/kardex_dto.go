package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KardexRequest query params para GET /api/reports/kardex.
type KardexRequest struct {
	From      string `query:"from" validate:"required"` // YYYY-MM-DD
	To        string `query:"to" validate:"required"`   // YYYY-MM-DD
	ProductID string `query:"product_id"`               // vacío = todos los productos
}

// KardexRowDTO una fila del kardex: el movimiento más su balance posterior.
type KardexRowDTO struct {
	Date               time.Time       `json:"date"`
	Operation          string          `json:"operation"` // COMPRA | VENTA
	RegistrationNumber string          `json:"registration_number"`
	RegistrationDate   time.Time       `json:"registration_date"`
	NCF                string          `json:"ncf"`
	CounterpartyRNC    string          `json:"counterparty_rnc"`
	CounterpartyName   string          `json:"counterparty_name"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Amount             decimal.Decimal `json:"amount"`
	BalanceQuantity    decimal.Decimal `json:"balance_quantity"`
	BalanceAmount      decimal.Decimal `json:"balance_amount"`
	AverageUnitCost    decimal.Decimal `json:"average_unit_cost"`
}

// KardexTotalsDTO totales del período para un producto.
type KardexTotalsDTO struct {
	PurchasedQuantity       decimal.Decimal `json:"purchased_quantity"`
	SoldQuantity            decimal.Decimal `json:"sold_quantity"`
	Revenue                 decimal.Decimal `json:"revenue"`
	Cost                    decimal.Decimal `json:"cost"`
	GrossMargin             decimal.Decimal `json:"gross_margin"`
	GrossMarginPctOnRevenue decimal.Decimal `json:"gross_margin_pct_on_revenue"`
	GrossMarginPctOnCost    decimal.Decimal `json:"gross_margin_pct_on_cost"`
	FinalBalanceQuantity    decimal.Decimal `json:"final_balance_quantity"`
	FinalBalanceAmount      decimal.Decimal `json:"final_balance_amount"`
	FinalAverageCost        decimal.Decimal `json:"final_average_cost"`
}

// KardexSheetDTO el kardex de un producto para la ventana solicitada.
type KardexSheetDTO struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	UnitMeasure string          `json:"unit_measure"`
	Rows        []KardexRowDTO  `json:"rows"`
	Totals      KardexTotalsDTO `json:"totals"`
}

// KardexReportResponse respuesta completa del reporte.
type KardexReportResponse struct {
	From   time.Time        `json:"from"`
	To     time.Time        `json:"to"`
	Sheets []KardexSheetDTO `json:"sheets"`
}
