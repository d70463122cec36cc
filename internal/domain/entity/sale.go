package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una factura de venta con sus líneas.
type Sale struct {
	ID                 string
	CompanyID          string
	Date               time.Time
	RegistrationNumber string
	RegistrationDate   time.Time
	NCF                string
	ClientRNC          string
	ClientName         string
	Items              []SaleItem
	CreatedAt          time.Time
}

// SaleItem es una línea de venta. Total es el ingreso de la línea; nunca se
// ajusta por costo.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}
