package repository

import (
	"context"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo de productos.
type ProductRepository interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListByCompany devuelve el catálogo de la empresa ordenado por código.
	ListByCompany(ctx context.Context, companyID string) ([]entity.Product, error)
}
