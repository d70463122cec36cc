package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
	"github.com/gestionrd/gestion-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// ListWithItems devuelve las compras de la empresa con fecha <= until y sus
// líneas anidadas. Dos consultas (documentos + líneas) agrupadas en memoria;
// el orden de documentos (fecha, fecha de registro, id) es el orden de
// recolección que el kardex usa como desempate.
func (r *PurchaseRepo) ListWithItems(ctx context.Context, companyID string, until time.Time) ([]entity.Purchase, error) {
	docsQuery := `
		SELECT id, company_id, date, registration_number, registration_date, ncf, supplier_rnc, supplier_name, created_at
		FROM purchases
		WHERE company_id = $1 AND date <= $2
		ORDER BY date, registration_date, id`
	rows, err := r.q.Query(ctx, docsQuery, companyID, until)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []entity.Purchase
	index := make(map[string]int)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Date, &p.RegistrationNumber, &p.RegistrationDate,
			&p.NCF, &p.SupplierRNC, &p.SupplierName, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		index[p.ID] = len(purchases)
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	if len(purchases) == 0 {
		return purchases, nil
	}

	itemsQuery := `
		SELECT i.id, i.purchase_id, i.product_id, i.quantity, i.unit_cost, i.total, i.adjusted_unit_cost, i.adjusted_total
		FROM purchase_items i
		JOIN purchases p ON p.id = i.purchase_id
		WHERE p.company_id = $1 AND p.date <= $2
		ORDER BY i.purchase_id, i.id`
	itemRows, err := r.q.Query(ctx, itemsQuery, companyID, until)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item entity.PurchaseItem
		if err := itemRows.Scan(
			&item.ID, &item.PurchaseID, &item.ProductID, &item.Quantity,
			&item.UnitCost, &item.Total, &item.AdjustedUnitCost, &item.AdjustedTotal,
		); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		if i, ok := index[item.PurchaseID]; ok {
			purchases[i].Items = append(purchases[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	return purchases, nil
}
