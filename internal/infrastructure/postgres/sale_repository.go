package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
	"github.com/gestionrd/gestion-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// ListWithItems devuelve las ventas de la empresa con fecha <= until y sus
// líneas anidadas, en orden de recolección (fecha, fecha de registro, id).
func (r *SaleRepo) ListWithItems(ctx context.Context, companyID string, until time.Time) ([]entity.Sale, error) {
	docsQuery := `
		SELECT id, company_id, date, registration_number, registration_date, ncf, client_rnc, client_name, created_at
		FROM sales
		WHERE company_id = $1 AND date <= $2
		ORDER BY date, registration_date, id`
	rows, err := r.q.Query(ctx, docsQuery, companyID, until)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []entity.Sale
	index := make(map[string]int)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.Date, &s.RegistrationNumber, &s.RegistrationDate,
			&s.NCF, &s.ClientRNC, &s.ClientName, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		index[s.ID] = len(sales)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	itemsQuery := `
		SELECT i.id, i.sale_id, i.product_id, i.quantity, i.unit_price, i.total
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.company_id = $1 AND s.date <= $2
		ORDER BY i.sale_id, i.id`
	itemRows, err := r.q.Query(ctx, itemsQuery, companyID, until)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item entity.SaleItem
		if err := itemRows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.Total,
		); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if i, ok := index[item.SaleID]; ok {
			sales[i].Items = append(sales[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	return sales, nil
}
