package usecase

import (
	"context"

	"github.com/gestionrd/gestion-api/internal/application/dto"
	"github.com/gestionrd/gestion-api/internal/domain/entity"
	"github.com/gestionrd/gestion-api/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo de productos. El catálogo se alimenta
// desde el módulo de maestros; aquí solo se consulta para los reportes.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve el catálogo de la empresa con paginación en memoria (el
// catálogo típico de estas empresas cabe completo en una respuesta).
func (uc *ProductUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	total := len(products)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	items := make([]dto.ProductResponse, 0, end-start)
	for _, p := range products[start:end] {
		items = append(items, toProductResponse(&p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		UnitMeasure: p.UnitMeasure,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
