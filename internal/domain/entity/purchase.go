package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una factura de compra con sus líneas. Date es la fecha
// de la transacción (la que ordena el kardex); RegistrationDate es la fecha en
// que se digitó el documento y solo se arrastra como dato informativo.
type Purchase struct {
	ID                 string
	CompanyID          string
	Date               time.Time
	RegistrationNumber string
	RegistrationDate   time.Time
	NCF                string
	SupplierRNC        string
	SupplierName       string
	Items              []PurchaseItem
	CreatedAt          time.Time
}

// PurchaseItem es una línea de compra. AdjustedUnitCost/AdjustedTotal existen
// cuando el costo fue ajustado después del registro (fletes, descuentos);
// el kardex prefiere el total ajustado si está presente.
type PurchaseItem struct {
	ID               string
	PurchaseID       string
	ProductID        string
	Quantity         decimal.Decimal
	UnitCost         decimal.Decimal
	Total            decimal.Decimal
	AdjustedUnitCost *decimal.Decimal
	AdjustedTotal    *decimal.Decimal
}
