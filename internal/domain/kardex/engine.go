package kardex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrInvalidEvent señala un evento que viola el contrato del motor (producto
// vacío, fecha cero, cantidad o monto negativo). Indica un error de
// programación aguas arriba, no un problema de datos de negocio: el stock
// negativo y la división por cero NO producen este error.
var ErrInvalidEvent = errors.New("kardex: evento inválido")

// OpeningBalance reconstruye la posición justo antes de que empiece la
// ventana, reproduciendo los eventos previos en el orden de recolección:
// todas las compras primero, luego todas las ventas, sin ordenar por fecha.
//
// Esa asimetría con ComputeSheet (que sí ordena por fecha) es deliberada:
// reproduce el comportamiento observable del cálculo original. Cambiarla a
// orden cronológico altera los promedios intermedios del balance inicial y
// debe ser una decisión explícita, no una "corrección" silenciosa.
func OpeningBalance(opening []Event) Position {
	var pos Position
	for _, ev := range opening {
		pos.Apply(ev)
	}
	return pos
}

// ComputeSheet reproduce los eventos de la ventana sobre la posición inicial
// y produce el kardex completo del producto: una fila por evento con su
// balance posterior, más los totales del período.
//
// Los eventos se ordenan por fecha ascendente con orden estable: eventos del
// mismo día conservan el orden de recolección (compras antes que ventas).
// Si la ventana no tiene eventos devuelve (nil, nil): el producto se omite
// del reporte, no se emite una hoja en ceros.
func ComputeSheet(productID string, openingPos Position, windowed []Event) (*Sheet, error) {
	if len(windowed) == 0 {
		return nil, nil
	}
	for _, ev := range windowed {
		if err := validateEvent(ev); err != nil {
			return nil, err
		}
	}

	events := make([]Event, len(windowed))
	copy(events, windowed)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.Before(events[j].OccurredAt)
	})

	pos := openingPos
	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		pos.Apply(ev)
		entries = append(entries, Entry{Event: ev, Balance: pos.Snapshot()})
	}

	return &Sheet{
		ProductID: productID,
		Entries:   entries,
		Totals:    computeTotals(entries),
	}, nil
}

// computeTotals agrega la ventana. El margen bruto se calcula con montos de
// documento (ingresos del período menos compras del período), no con el costo
// de venta emparejado: un período con más compras que ventas puede mostrar
// margen negativo aunque cada unidad se venda con ganancia.
func computeTotals(entries []Entry) Totals {
	var t Totals
	hundred := decimal.NewFromInt(100)

	for _, e := range entries {
		switch e.Event.Operation {
		case OperationPurchase:
			t.PurchasedQuantity = t.PurchasedQuantity.Add(e.Event.Quantity)
			t.Cost = t.Cost.Add(e.Event.Amount)
		case OperationSale:
			t.SoldQuantity = t.SoldQuantity.Add(e.Event.Quantity)
			t.Revenue = t.Revenue.Add(e.Event.Amount)
		}
	}

	t.GrossMargin = t.Revenue.Sub(t.Cost)
	if t.Revenue.GreaterThan(decimal.Zero) {
		t.GrossMarginPctOnRevenue = t.GrossMargin.Div(t.Revenue).Mul(hundred)
	}
	if t.Cost.GreaterThan(decimal.Zero) {
		t.GrossMarginPctOnCost = t.GrossMargin.Div(t.Cost).Mul(hundred)
	}

	last := entries[len(entries)-1].Balance
	t.FinalBalanceQuantity = last.BalanceQuantity
	t.FinalBalanceAmount = last.BalanceAmount
	t.FinalAverageCost = last.AverageUnitCost
	return t
}

// validateEvent rechaza entradas que solo pueden venir de un error de
// programación (el colector nunca las produce). El error identifica producto
// y documento para que el caller pueda atribuir la falla.
func validateEvent(ev Event) error {
	switch {
	case ev.ProductID == "":
		return fmt.Errorf("%w: producto vacío (documento %q)", ErrInvalidEvent, ev.RegistrationNumber)
	case ev.OccurredAt.IsZero():
		return fmt.Errorf("%w: fecha cero (producto %s, documento %q)", ErrInvalidEvent, ev.ProductID, ev.RegistrationNumber)
	case ev.Quantity.LessThan(decimal.Zero):
		return fmt.Errorf("%w: cantidad negativa (producto %s, documento %q)", ErrInvalidEvent, ev.ProductID, ev.RegistrationNumber)
	case ev.Amount.LessThan(decimal.Zero):
		return fmt.Errorf("%w: monto negativo (producto %s, documento %q)", ErrInvalidEvent, ev.ProductID, ev.RegistrationNumber)
	case ev.Operation != OperationPurchase && ev.Operation != OperationSale:
		return fmt.Errorf("%w: operación desconocida %q (producto %s)", ErrInvalidEvent, ev.Operation, ev.ProductID)
	}
	return nil
}
