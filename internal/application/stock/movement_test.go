package stock_test

import (
	"context"
	"testing"
	"time"

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

type movementFixture struct {
	store     *memory.Store
	floorRepo *memory.FloorStockRepository
	uc        *stock.MovementUseCase
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	store := memory.NewStore()
	return &movementFixture{
		store:     store,
		floorRepo: memory.NewFloorStockRepository(store),
		uc: stock.NewMovementUseCase(
			memory.NewTxRunner(store),
			memory.NewProductRepository(store),
		),
	}
}

func (f *movementFixture) addProduct(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, memory.NewProductRepository(f.store).Create(&entity.Product{
		ID: id, Name: "producto " + id, UnitsPerBox: d(10), CreatedAt: time.Now(),
	}))
}

func (f *movementFixture) addFloor(t *testing.T, id, lot string, qty int64, at time.Time) {
	t.Helper()
	require.NoError(t, f.floorRepo.Create(&entity.FloorStockItem{
		ID: id, ProductID: "p1", Lot: lot, Tonality: "T1", Gauge: "G1",
		Quantity: d(qty), CreatedAt: at,
	}))
}

func (f *movementFixture) floorQty(t *testing.T, lot string) *entity.FloorStockItem {
	t.Helper()
	it, err := f.floorRepo.GetByVariant(entity.VariantKey{
		ProductID: "p1", Tonality: "T1", Gauge: "G1", Lot: lot,
	})
	require.NoError(t, err)
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// TransferDepositToFloor
// ──────────────────────────────────────────────────────────────────────────────

// Primera transferencia de una variante crea la fila; la segunda acumula sobre ella
// sin crear una nueva.
func TestTransfer_UpsertPorVariante(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")

	in := stock.TransferInput{ProductID: "p1", Quantity: d(10), Lot: "L1", Tonality: "T1", Gauge: "G1"}
	require.NoError(t, f.uc.TransferDepositToFloor(context.Background(), in))

	in.Quantity = d(5)
	require.NoError(t, f.uc.TransferDepositToFloor(context.Background(), in))

	items, err := f.floorRepo.ListByProduct("p1")
	require.NoError(t, err)
	require.Len(t, items, 1, "la segunda transferencia debe acumular, no duplicar")
	assert.True(t, items[0].Quantity.Equal(d(15)))
}

func TestTransfer_CantidadNoPositiva(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	err := f.uc.TransferDepositToFloor(context.Background(), stock.TransferInput{
		ProductID: "p1", Quantity: d(0), Lot: "L1", Tonality: "T1", Gauge: "G1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_VarianteIncompleta(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	err := f.uc.TransferDepositToFloor(context.Background(), stock.TransferInput{
		ProductID: "p1", Quantity: d(10), Lot: "L1", Tonality: "", Gauge: "G1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_ProductoInexistente(t *testing.T) {
	f := newMovementFixture(t)
	err := f.uc.TransferDepositToFloor(context.Background(), stock.TransferInput{
		ProductID: "nope", Quantity: d(10), Lot: "L1", Tonality: "T1", Gauge: "G1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// WithdrawFromFloor — variante exacta
// ──────────────────────────────────────────────────────────────────────────────

func TestWithdrawExacto_Descuenta(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	f.addFloor(t, "f1", "L1", 10, time.Now())

	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(4), Lot: "L1", Tonality: "T1", Gauge: "G1",
	})
	require.NoError(t, err)

	it := f.floorQty(t, "L1")
	require.NotNil(t, it)
	assert.True(t, it.Quantity.Equal(d(6)))
}

// La fila que llega exactamente a cero se elimina: nunca se persiste una fila en cero.
func TestWithdrawExacto_EliminaFilaEnCero(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	f.addFloor(t, "f1", "L1", 10, time.Now())

	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(10), Lot: "L1", Tonality: "T1", Gauge: "G1",
	})
	require.NoError(t, err)
	assert.Nil(t, f.floorQty(t, "L1"), "la fila agotada debe desaparecer del ledger")
}

// Pedido mayor que la fila: ErrInsufficientStock y la fila queda intacta.
func TestWithdrawExacto_InsuficienteNoMuta(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	f.addFloor(t, "f1", "L1", 10, time.Now())

	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(11), Lot: "L1", Tonality: "T1", Gauge: "G1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	it := f.floorQty(t, "L1")
	require.NotNil(t, it)
	assert.True(t, it.Quantity.Equal(d(10)), "el retiro fallido no debe mutar el ledger")
}

func TestWithdrawExacto_VarianteInexistente(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(1), Lot: "L9", Tonality: "T1", Gauge: "G1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Variante a medias (solo lote, sin tonalidad/calibre): ni exacto ni FIFO.
func TestWithdraw_VarianteAMedias(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(1), Lot: "L1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// WithdrawFromFloor — FIFO
// ──────────────────────────────────────────────────────────────────────────────

// El recorrido consume primero la fila más antigua y elimina las agotadas.
func TestWithdrawFIFO_ConsumeMasAntiguoPrimero(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	base := time.Now()
	f.addFloor(t, "f1", "L1", 10, base)
	f.addFloor(t, "f2", "L2", 10, base.Add(time.Minute))

	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(12),
	})
	require.NoError(t, err)

	assert.Nil(t, f.floorQty(t, "L1"), "la fila más antigua debe agotarse y eliminarse")
	it := f.floorQty(t, "L2")
	require.NotNil(t, it)
	assert.True(t, it.Quantity.Equal(d(8)), "la fila más nueva absorbe el resto")
}

// Demanda mayor que la oferta: el piso queda vacío, lo consumido SE CONFIRMA y el
// faltante se reporta como ErrInsufficientStock.
func TestWithdrawFIFO_ParcialConfirmaYReportaFaltante(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	base := time.Now()
	f.addFloor(t, "f1", "L1", 10, base)
	f.addFloor(t, "f2", "L2", 5, base.Add(time.Minute))

	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(20),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	items, lerr := f.floorRepo.ListByProduct("p1")
	require.NoError(t, lerr)
	assert.Empty(t, items, "lo consumido se confirma aunque quede faltante")
}

func TestWithdrawFIFO_PisoVacio(t *testing.T) {
	f := newMovementFixture(t)
	f.addProduct(t, "p1")
	err := f.uc.WithdrawFromFloor(context.Background(), stock.WithdrawInput{
		ProductID: "p1", Quantity: d(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
