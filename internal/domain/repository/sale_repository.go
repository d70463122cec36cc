package repository

import (
	"context"
	"time"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
)

// SaleRepository puerto de lectura de facturas de venta para el kardex.
type SaleRepository interface {
	// ListWithItems devuelve todas las ventas de la empresa con fecha de
	// transacción <= until, con sus líneas anidadas, en orden de fecha y de
	// registro.
	ListWithItems(ctx context.Context, companyID string, until time.Time) ([]entity.Sale, error)
}
