package repository

import (
	"context"
	"time"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
)

// PurchaseRepository puerto de lectura de facturas de compra para el kardex.
type PurchaseRepository interface {
	// ListWithItems devuelve todas las compras de la empresa con fecha de
	// transacción <= until, con sus líneas anidadas, en orden de fecha y de
	// registro. El kardex necesita el historial completo hasta el fin de la
	// ventana para reconstruir el balance inicial.
	ListWithItems(ctx context.Context, companyID string, until time.Time) ([]entity.Purchase, error)
}
