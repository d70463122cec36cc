package kardex

import (
	"github.com/shopspring/decimal"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
)

// CollectEvents recorre todas las compras y ventas y clasifica cada línea que
// toca productID en dos particiones: "opening" (fecha estrictamente anterior a
// la ventana, alimenta el balance inicial) y "windowed" (fecha dentro de la
// ventana, alimenta el cuerpo del kardex). Las líneas posteriores al fin de la
// ventana se excluyen en silencio.
//
// El orden de las particiones es el de recolección: todas las compras primero,
// luego todas las ventas, cada grupo en el orden de los documentos. Ese orden
// es el desempate de eventos con la misma fecha en la reproducción ventana y
// el orden completo del pase de balance inicial (ver OpeningBalance).
//
// Transformación pura y determinista, sin efectos secundarios. Una línea con
// cantidad o monto malformado (negativo) se colecta con cero en ese campo: el
// reporte nunca debe dejar de renderizar por un documento malo.
func CollectEvents(productID string, purchases []entity.Purchase, sales []entity.Sale, w Window) (opening, windowed []Event) {
	for _, doc := range purchases {
		if doc.Date.After(w.To) {
			continue
		}
		inWindow := !doc.Date.Before(w.From)
		for _, item := range doc.Items {
			if item.ProductID != productID {
				continue
			}
			ev := Event{
				ProductID:          productID,
				Operation:          OperationPurchase,
				OccurredAt:         doc.Date,
				Quantity:           nonNegative(item.Quantity),
				Amount:             nonNegative(purchaseAmount(item)),
				RegistrationNumber: doc.RegistrationNumber,
				RegistrationDate:   doc.RegistrationDate,
				CounterpartyRNC:    doc.SupplierRNC,
				CounterpartyName:   doc.SupplierName,
				NCF:                doc.NCF,
				UnitPrice:          purchaseUnitCost(item),
			}
			if inWindow {
				windowed = append(windowed, ev)
			} else {
				opening = append(opening, ev)
			}
		}
	}

	for _, doc := range sales {
		if doc.Date.After(w.To) {
			continue
		}
		inWindow := !doc.Date.Before(w.From)
		for _, item := range doc.Items {
			if item.ProductID != productID {
				continue
			}
			ev := Event{
				ProductID:          productID,
				Operation:          OperationSale,
				OccurredAt:         doc.Date,
				Quantity:           nonNegative(item.Quantity),
				Amount:             nonNegative(item.Total),
				RegistrationNumber: doc.RegistrationNumber,
				RegistrationDate:   doc.RegistrationDate,
				CounterpartyRNC:    doc.ClientRNC,
				CounterpartyName:   doc.ClientName,
				NCF:                doc.NCF,
				UnitPrice:          item.UnitPrice,
			}
			if inWindow {
				windowed = append(windowed, ev)
			} else {
				opening = append(opening, ev)
			}
		}
	}

	return opening, windowed
}

// purchaseAmount devuelve el total ajustado por costo si existe, si no el
// total crudo de la línea.
func purchaseAmount(item entity.PurchaseItem) decimal.Decimal {
	if item.AdjustedTotal != nil {
		return *item.AdjustedTotal
	}
	return item.Total
}

// purchaseUnitCost devuelve el costo unitario ajustado si existe, si no el
// costo unitario original (solo para mostrar, no participa en la valoración).
func purchaseUnitCost(item entity.PurchaseItem) decimal.Decimal {
	if item.AdjustedUnitCost != nil {
		return *item.AdjustedUnitCost
	}
	return item.UnitCost
}

// nonNegative colapsa valores negativos a cero (línea malformada).
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
