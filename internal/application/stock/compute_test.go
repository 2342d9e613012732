package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratex/deposito-api/internal/application/stock"
	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func strPtr(s string) *string { return &s }

func decPtr(n int64) *decimal.Decimal {
	v := decimal.NewFromInt(n)
	return &v
}

type computeFixture struct {
	store *memory.Store
	uc    *stock.ComputeStockUseCase
}

func newComputeFixture(t *testing.T) *computeFixture {
	t.Helper()
	store := memory.NewStore()
	return &computeFixture{
		store: store,
		uc: stock.NewComputeStockUseCase(
			memory.NewProductRepository(store),
			memory.NewFloorStockRepository(store),
			memory.NewSlotRepository(store),
		),
	}
}

func (f *computeFixture) addProduct(t *testing.T, id string, unitsPerBox int64) {
	t.Helper()
	repo := memory.NewProductRepository(f.store)
	require.NoError(t, repo.Create(&entity.Product{
		ID:          id,
		Name:        "producto " + id,
		UnitsPerBox: d(unitsPerBox),
		CreatedAt:   time.Now(),
	}))
}

func (f *computeFixture) addFloor(t *testing.T, id, productID, lot, tonality, gauge string, qty int64, at time.Time) {
	t.Helper()
	repo := memory.NewFloorStockRepository(f.store)
	require.NoError(t, repo.Create(&entity.FloorStockItem{
		ID:        id,
		ProductID: productID,
		Lot:       lot,
		Tonality:  tonality,
		Gauge:     gauge,
		Quantity:  d(qty),
		CreatedAt: at,
	}))
}

func (f *computeFixture) addSlot(t *testing.T, slot *entity.WarehouseSlot) {
	t.Helper()
	require.NoError(t, memory.NewSlotRepository(f.store).Create(slot))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStock
// ──────────────────────────────────────────────────────────────────────────────

// Piso 10+5, vagas disponibles 3 y 2 cajas a 10 unidades por caja: el total debe
// sumar 15 de piso y 50 direccionado.
func TestComputeStock_SumaAmbosPools(t *testing.T) {
	f := newComputeFixture(t)
	f.addProduct(t, "p1", 10)
	now := time.Now()
	f.addFloor(t, "f1", "p1", "L1", "T1", "G1", 10, now)
	f.addFloor(t, "f2", "p1", "L2", "T1", "G1", 5, now.Add(time.Minute))
	f.addSlot(t, &entity.WarehouseSlot{
		ID: "s1", ProductID: "p1", BuildingID: "b1",
		Tonality: "T1", Gauge: "G1", Lot: strPtr("L1"),
		BoxCount: decPtr(3), Available: true, CreatedAt: now,
	})
	f.addSlot(t, &entity.WarehouseSlot{
		ID: "s2", ProductID: "p1", BuildingID: "b1",
		Tonality: "T1", Gauge: "G1", Lot: strPtr("L2"),
		BoxCount: decPtr(2), Available: true, CreatedAt: now,
	})

	sum, err := f.uc.ComputeStock(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, sum.FloorTotal.Equal(d(15)), "piso: esperado 15, obtenido %s", sum.FloorTotal)
	assert.True(t, sum.DepositTotal.Equal(d(50)), "direccionado: esperado 50, obtenido %s", sum.DepositTotal)
	assert.True(t, sum.GrandTotal.Equal(d(65)))
}

// Las vagas no disponibles y las de otro producto no cuentan.
func TestComputeStock_IgnoraVagasNoDisponiblesYOtrosProductos(t *testing.T) {
	f := newComputeFixture(t)
	f.addProduct(t, "p1", 10)
	f.addProduct(t, "p2", 10)
	now := time.Now()
	f.addSlot(t, &entity.WarehouseSlot{
		ID: "s1", ProductID: "p1", BuildingID: "b1",
		Tonality: "T1", Gauge: "G1", BoxCount: decPtr(4), Available: false, CreatedAt: now,
	})
	f.addSlot(t, &entity.WarehouseSlot{
		ID: "s2", ProductID: "p2", BuildingID: "b1",
		Tonality: "T1", Gauge: "G1", BoxCount: decPtr(4), Available: true, CreatedAt: now,
	})

	sum, err := f.uc.ComputeStock(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, sum.GrandTotal.IsZero(), "esperado 0, obtenido %s", sum.GrandTotal)
}

// Una vaga sin cajas registradas aporta capacidad cero, no error.
func TestComputeStock_VagaSinCajasAportaCero(t *testing.T) {
	f := newComputeFixture(t)
	f.addProduct(t, "p1", 10)
	f.addSlot(t, &entity.WarehouseSlot{
		ID: "s1", ProductID: "p1", BuildingID: "b1",
		Tonality: "T1", Gauge: "G1", Available: true, CreatedAt: time.Now(),
	})

	sum, err := f.uc.ComputeStock(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, sum.DepositTotal.IsZero())
}

func TestComputeStock_ProductoInexistente(t *testing.T) {
	f := newComputeFixture(t)
	_, err := f.uc.ComputeStock(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// unitsPerBox <= 0 se rechaza en el borde: sin factor no hay conversión posible.
func TestComputeStock_UnitsPerBoxNoPositivo(t *testing.T) {
	f := newComputeFixture(t)
	f.addProduct(t, "p1", 0)
	_, err := f.uc.ComputeStock(context.Background(), "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockDetail
// ──────────────────────────────────────────────────────────────────────────────

// El detalle lista primero el piso (orden FIFO) y después las vagas (id ascendente),
// con la conversión caja→unidad por fila de vaga.
func TestStockDetail_FilasDeAmbosPools(t *testing.T) {
	f := newComputeFixture(t)
	f.addProduct(t, "p1", 12)
	base := time.Now()
	f.addFloor(t, "f2", "p1", "L2", "T1", "G1", 5, base.Add(time.Minute))
	f.addFloor(t, "f1", "p1", "L1", "T1", "G1", 10, base)
	f.addSlot(t, &entity.WarehouseSlot{
		ID: "s1", ProductID: "p1", BuildingID: "b1",
		Tonality: "T2", Gauge: "G1", Lot: strPtr("L3"),
		BoxCount: decPtr(2), Available: true, CreatedAt: base,
	})

	rows, err := f.uc.StockDetail(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Piso en orden de creación
	assert.Equal(t, stock.DetailSourceFloor, rows[0].Source)
	assert.Equal(t, "L1", rows[0].Lot)
	assert.True(t, rows[0].Units.Equal(d(10)), "para piso Units == Quantity")

	assert.Equal(t, "L2", rows[1].Lot)

	// La vaga convierte cajas a unidades
	assert.Equal(t, stock.DetailSourceSlot, rows[2].Source)
	assert.Equal(t, "s1", rows[2].SlotID)
	assert.True(t, rows[2].Quantity.Equal(d(2)), "Quantity en cajas")
	assert.True(t, rows[2].Units.Equal(d(24)), "Units = cajas × unitsPerBox")
}
