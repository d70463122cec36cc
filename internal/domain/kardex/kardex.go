// Package kardex implementa el motor de valoración de inventario perpetuo a
// costo promedio ponderado. Reconstruye, para un rango de fechas arbitrario,
// el balance inicial de cada producto (reproduciendo todo el historial previo
// de compras y ventas) y luego reproduce los eventos dentro de la ventana para
// producir el kardex: balance en cantidad, balance en monto y costo promedio
// después de cada evento, más los totales del período.
//
// El motor es una función pura sobre sus entradas: sin estado compartido, sin
// reloj, sin persistencia. Dos invocaciones con los mismos documentos producen
// exactamente la misma hoja.
package kardex

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation distingue los dos tipos de evento que mueven el inventario.
type Operation string

const (
	OperationPurchase Operation = "COMPRA"
	OperationSale     Operation = "VENTA"
)

// Event es una línea de compra o venta que toca un producto. Quantity y Amount
// participan en la valoración; el resto son datos de procedencia que se
// arrastran sin modificar para el reporte.
type Event struct {
	ProductID  string
	Operation  Operation
	OccurredAt time.Time       // fecha del documento, NO la fecha de registro
	Quantity   decimal.Decimal // siempre positiva; el signo lo aporta Operation
	Amount     decimal.Decimal // compras: total (ajustado si existe); ventas: total de la línea

	// Procedencia (carga opaca, no participa en la aritmética)
	RegistrationNumber string
	RegistrationDate   time.Time
	CounterpartyRNC    string
	CounterpartyName   string
	NCF                string
	UnitPrice          decimal.Decimal
}

// Position es el estado de valoración que se enhebra evento a evento:
// cantidad en existencia y monto invertido en esa cantidad (base de costo).
// Puede quedar negativa si se registran ventas sin compra suficiente previa;
// eso no es un error del motor sino un problema de calidad de datos.
type Position struct {
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

// AverageUnitCost deriva el costo promedio de la posición: Amount/Quantity
// cuando Quantity > 0, cero en cualquier otro caso. Nunca se almacena, siempre
// se deriva al momento de leer.
func (p Position) AverageUnitCost() decimal.Decimal {
	if p.Quantity.GreaterThan(decimal.Zero) {
		return p.Amount.Div(p.Quantity)
	}
	return decimal.Zero
}

// Apply muta la posición con la regla de transición del evento.
// COMPRA suma cantidad y monto directamente. VENTA descarga la cantidad al
// costo promedio vigente (no al precio de venta): el costo de la venta es
// avgCost*Quantity y se resta de la base de costo.
func (p *Position) Apply(ev Event) {
	switch ev.Operation {
	case OperationPurchase:
		p.Quantity = p.Quantity.Add(ev.Quantity)
		p.Amount = p.Amount.Add(ev.Amount)
	case OperationSale:
		avg := decimal.Zero
		if p.Amount.GreaterThan(decimal.Zero) && p.Quantity.GreaterThan(decimal.Zero) {
			avg = p.Amount.Div(p.Quantity)
		}
		p.Quantity = p.Quantity.Sub(ev.Quantity)
		p.Amount = p.Amount.Sub(avg.Mul(ev.Quantity))
	}
}

// Snapshot es la foto inmutable de la posición después de aplicar un evento.
type Snapshot struct {
	BalanceQuantity decimal.Decimal
	BalanceAmount   decimal.Decimal
	AverageUnitCost decimal.Decimal
}

// Snapshot congela la posición actual.
func (p Position) Snapshot() Snapshot {
	return Snapshot{
		BalanceQuantity: p.Quantity,
		BalanceAmount:   p.Amount,
		AverageUnitCost: p.AverageUnitCost(),
	}
}

// Entry es una fila del kardex: el evento más su estado posterior.
type Entry struct {
	Event   Event
	Balance Snapshot
}

// Totals agrega la ventana completa. GrossMargin usa los montos de documento
// (ingresos menos compras del período), no el costo de venta emparejado.
type Totals struct {
	PurchasedQuantity       decimal.Decimal
	SoldQuantity            decimal.Decimal
	Revenue                 decimal.Decimal
	Cost                    decimal.Decimal
	GrossMargin             decimal.Decimal
	GrossMarginPctOnRevenue decimal.Decimal
	GrossMarginPctOnCost    decimal.Decimal
	FinalBalanceQuantity    decimal.Decimal
	FinalBalanceAmount      decimal.Decimal
	FinalAverageCost        decimal.Decimal
}

// Sheet es el kardex de un producto para una invocación del reporte.
// Se construye fresco en cada petición y nunca se persiste.
type Sheet struct {
	ProductID string
	Entries   []Entry
	Totals    Totals
}

// Window es el rango de fechas del reporte, ambos extremos inclusivos.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains indica si la fecha cae dentro de la ventana (inclusiva).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// IsValid indica si la ventana está bien formada (From <= To).
func (w Window) IsValid() bool {
	return !w.To.Before(w.From)
}
