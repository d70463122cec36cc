package kardex

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
)

// BuildReport calcula el kardex de cada producto del catálogo para la ventana
// dada. Cada producto es independiente de los demás (no comparten posición),
// así que se computan en paralelo; el resultado conserva el orden del catálogo
// y omite los productos sin eventos dentro de la ventana.
//
// Una ventana degenerada (To < From) no es un error aquí: ninguna línea cae
// dentro y el reporte sale vacío. El caller valida la ventana antes si quiere
// rechazarla.
func BuildReport(ctx context.Context, products []entity.Product, purchases []entity.Purchase, sales []entity.Sale, w Window) ([]*Sheet, error) {
	results := make([]*Sheet, len(products))

	g, ctx := errgroup.WithContext(ctx)
	for i, product := range products {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opening, windowed := CollectEvents(product.ID, purchases, sales, w)
			sheet, err := ComputeSheet(product.ID, OpeningBalance(opening), windowed)
			if err != nil {
				return err
			}
			results[i] = sheet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sheets := make([]*Sheet, 0, len(results))
	for _, s := range results {
		if s != nil {
			sheets = append(sheets, s)
		}
	}
	return sheets, nil
}
