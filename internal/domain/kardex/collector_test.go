package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionrd/gestion-api/internal/domain/entity"
	"github.com/gestionrd/gestion-api/internal/domain/kardex"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: la ventana de prueba es el mes de enero 2024 completo.
// ──────────────────────────────────────────────────────────────────────────────

func testWindow() kardex.Window {
	return kardex.Window{
		From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
	}
}

func purchaseDoc(t *testing.T, at time.Time, items ...entity.PurchaseItem) entity.Purchase {
	t.Helper()
	return entity.Purchase{
		ID:                 "compra-" + at.Format("20060102"),
		CompanyID:          "empresa-1",
		Date:               at,
		RegistrationNumber: "RC-" + at.Format("0102"),
		RegistrationDate:   at.AddDate(0, 0, 1),
		NCF:                "B0100000001",
		SupplierRNC:        "101000001",
		SupplierName:       "Distribuidora El Sol SRL",
		Items:              items,
	}
}

func saleDoc(t *testing.T, at time.Time, items ...entity.SaleItem) entity.Sale {
	t.Helper()
	return entity.Sale{
		ID:                 "venta-" + at.Format("20060102"),
		CompanyID:          "empresa-1",
		Date:               at,
		RegistrationNumber: "RV-" + at.Format("0102"),
		RegistrationDate:   at,
		NCF:                "B0200000001",
		ClientRNC:          "102000002",
		ClientName:         "Colmado Doña Ana",
		Items:              items,
	}
}

func pItem(t *testing.T, productID, qty, unitCost, total string) entity.PurchaseItem {
	t.Helper()
	return entity.PurchaseItem{
		ProductID: productID,
		Quantity:  dec(t, qty),
		UnitCost:  dec(t, unitCost),
		Total:     dec(t, total),
	}
}

func sItem(t *testing.T, productID, qty, unitPrice, total string) entity.SaleItem {
	t.Helper()
	return entity.SaleItem{
		ProductID: productID,
		Quantity:  dec(t, qty),
		UnitPrice: dec(t, unitPrice),
		Total:     dec(t, total),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Particionado
// ──────────────────────────────────────────────────────────────────────────────

// TestCollectEvents_Particiona: cada línea del producto con fecha <= fin de
// ventana cae en exactamente una partición; lo posterior se excluye.
func TestCollectEvents_Particiona(t *testing.T) {
	purchases := []entity.Purchase{
		purchaseDoc(t, day(-10, 0), pItem(t, testProductID, "10", "10", "100")), // previa
		purchaseDoc(t, day(5, 0), pItem(t, testProductID, "20", "11", "220")),                     // en ventana
		purchaseDoc(t, day(3, 0).AddDate(0, 1, 0), pItem(t, testProductID, "30", "12", "360")),    // posterior
	}
	sales := []entity.Sale{
		saleDoc(t, day(-2, 0), sItem(t, testProductID, "4", "20", "80")), // previa
		saleDoc(t, day(15, 0), sItem(t, testProductID, "6", "22", "132")),                  // en ventana
	}

	opening, windowed := kardex.CollectEvents(testProductID, purchases, sales, testWindow())

	require.Len(t, opening, 2, "una compra y una venta previas")
	require.Len(t, windowed, 2, "una compra y una venta en ventana; lo posterior se excluye")

	assert.Equal(t, kardex.OperationPurchase, opening[0].Operation)
	assert.Equal(t, kardex.OperationSale, opening[1].Operation)
	assertDec(t, "220", windowed[0].Amount)
	assertDec(t, "132", windowed[1].Amount)
}

// TestCollectEvents_IgnoraOtrosProductos: líneas de otros productos en el
// mismo documento no generan eventos.
func TestCollectEvents_IgnoraOtrosProductos(t *testing.T) {
	otro := "00000000-0000-0000-0000-0000000000bb"
	purchases := []entity.Purchase{
		purchaseDoc(t, day(5, 0),
			pItem(t, testProductID, "10", "10", "100"),
			pItem(t, otro, "99", "1", "99"),
		),
	}

	opening, windowed := kardex.CollectEvents(testProductID, purchases, nil, testWindow())

	assert.Empty(t, opening)
	require.Len(t, windowed, 1)
	assertDec(t, "10", windowed[0].Quantity)
}

// TestCollectEvents_ComprasAntesQueVentas: el orden de recolección es todas
// las compras primero y luego todas las ventas. Es el desempate del kardex.
func TestCollectEvents_ComprasAntesQueVentas(t *testing.T) {
	mismoDia := day(8, 0)
	purchases := []entity.Purchase{purchaseDoc(t, mismoDia, pItem(t, testProductID, "5", "10", "50"))}
	sales := []entity.Sale{saleDoc(t, mismoDia, sItem(t, testProductID, "2", "15", "30"))}

	_, windowed := kardex.CollectEvents(testProductID, purchases, sales, testWindow())

	require.Len(t, windowed, 2)
	assert.Equal(t, kardex.OperationPurchase, windowed[0].Operation)
	assert.Equal(t, kardex.OperationSale, windowed[1].Operation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Montos
// ──────────────────────────────────────────────────────────────────────────────

// TestCollectEvents_PrefiereTotalAjustado: si la línea de compra trae total
// ajustado por costo, ese es el monto del evento; si no, el total crudo.
func TestCollectEvents_PrefiereTotalAjustado(t *testing.T) {
	ajustado := dec(t, "115")
	costoAjustado := dec(t, "11.5")
	item := pItem(t, testProductID, "10", "10", "100")
	item.AdjustedTotal = &ajustado
	item.AdjustedUnitCost = &costoAjustado

	purchases := []entity.Purchase{
		purchaseDoc(t, day(5, 0), item),
		purchaseDoc(t, day(6, 0), pItem(t, testProductID, "10", "10", "100")),
	}

	_, windowed := kardex.CollectEvents(testProductID, purchases, nil, testWindow())

	require.Len(t, windowed, 2)
	assertDec(t, "115", windowed[0].Amount, "usa el total ajustado")
	assertDec(t, "11.5", windowed[0].UnitPrice)
	assertDec(t, "100", windowed[1].Amount, "sin ajuste usa el total crudo")
}

// TestCollectEvents_VentaNuncaAjustada: el monto de una venta es el ingreso
// de la línea tal cual.
func TestCollectEvents_VentaNuncaAjustada(t *testing.T) {
	sales := []entity.Sale{saleDoc(t, day(9, 0), sItem(t, testProductID, "3", "40", "120"))}

	_, windowed := kardex.CollectEvents(testProductID, nil, sales, testWindow())

	require.Len(t, windowed, 1)
	assertDec(t, "120", windowed[0].Amount)
	assertDec(t, "40", windowed[0].UnitPrice)
}

// TestCollectEvents_LineaMalformadaColapsaACero: cantidades o montos
// negativos (documento malo) se colectan como cero en vez de romper el
// reporte. Default defensivo, no garantía de corrección de los datos.
func TestCollectEvents_LineaMalformadaColapsaACero(t *testing.T) {
	item := entity.PurchaseItem{
		ProductID: testProductID,
		Quantity:  decimal.NewFromInt(-5),
		Total:     decimal.NewFromInt(-50),
	}
	purchases := []entity.Purchase{purchaseDoc(t, day(4, 0), item)}

	_, windowed := kardex.CollectEvents(testProductID, purchases, nil, testWindow())

	require.Len(t, windowed, 1, "la línea no se descarta, se colecta en cero")
	assertDec(t, "0", windowed[0].Quantity)
	assertDec(t, "0", windowed[0].Amount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Procedencia y determinismo
// ──────────────────────────────────────────────────────────────────────────────

// TestCollectEvents_ArrastraProcedencia: NCF, RNC y número de registro llegan
// intactos al evento (carga opaca para el reporte).
func TestCollectEvents_ArrastraProcedencia(t *testing.T) {
	purchases := []entity.Purchase{purchaseDoc(t, day(5, 0), pItem(t, testProductID, "1", "10", "10"))}

	_, windowed := kardex.CollectEvents(testProductID, purchases, nil, testWindow())

	require.Len(t, windowed, 1)
	ev := windowed[0]
	assert.Equal(t, "B0100000001", ev.NCF)
	assert.Equal(t, "101000001", ev.CounterpartyRNC)
	assert.Equal(t, "Distribuidora El Sol SRL", ev.CounterpartyName)
	assert.Equal(t, "RC-0105", ev.RegistrationNumber)
}

// TestCollectEvents_Determinista: misma entrada, misma salida.
func TestCollectEvents_Determinista(t *testing.T) {
	purchases := []entity.Purchase{purchaseDoc(t, day(5, 0), pItem(t, testProductID, "10", "10", "100"))}
	sales := []entity.Sale{saleDoc(t, day(7, 0), sItem(t, testProductID, "2", "15", "30"))}

	o1, w1 := kardex.CollectEvents(testProductID, purchases, sales, testWindow())
	o2, w2 := kardex.CollectEvents(testProductID, purchases, sales, testWindow())

	assert.Equal(t, o1, o2)
	assert.Equal(t, w1, w2)
}
