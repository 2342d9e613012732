package separation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratex/deposito-api/internal/application/separation"
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

type plannerFixture struct {
	store *memory.Store
	uc    *separation.PlannerUseCase
}

func newPlannerFixture(t *testing.T) *plannerFixture {
	t.Helper()
	store := memory.NewStore()
	return &plannerFixture{
		store: store,
		uc: separation.NewPlannerUseCase(
			memory.NewProductRepository(store),
			memory.NewFloorStockRepository(store),
			memory.NewSlotRepository(store),
		),
	}
}

func (f *plannerFixture) addProduct(t *testing.T, id string, unitsPerBox int64) {
	t.Helper()
	require.NoError(t, memory.NewProductRepository(f.store).Create(&entity.Product{
		ID: id, Name: "producto " + id, UnitsPerBox: d(unitsPerBox), CreatedAt: time.Now(),
	}))
}

func (f *plannerFixture) addFloor(t *testing.T, id, productID, lot, tonality, gauge string, qty int64) {
	t.Helper()
	require.NoError(t, memory.NewFloorStockRepository(f.store).Create(&entity.FloorStockItem{
		ID: id, ProductID: productID, Lot: lot, Tonality: tonality, Gauge: gauge,
		Quantity: d(qty), CreatedAt: time.Now(),
	}))
}

func (f *plannerFixture) addSlot(t *testing.T, id, productID, lot, tonality, gauge string, boxes int64, available bool) {
	t.Helper()
	require.NoError(t, memory.NewSlotRepository(f.store).Create(&entity.WarehouseSlot{
		ID: id, ProductID: productID, BuildingID: "b1",
		Tonality: tonality, Gauge: gauge, Lot: strPtr(lot),
		BoxCount: decPtr(boxes), Available: available, CreatedAt: time.Now(),
	}))
}

func line(productID, tonality, gauge, lot string, qty int64) separation.DemandLine {
	return separation.DemandLine{
		ProductID: productID, Tonality: tonality, Gauge: gauge, Lot: lot, Quantity: d(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Niveles de asignación
// ──────────────────────────────────────────────────────────────────────────────

// Pedido 30, piso exacto 10 y piso con otro lote 15: el plan consume ambos niveles en
// orden y la línea queda parcial con faltante 5.
func TestPlan_NivelesExactoYOtroLote(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "L1", "T1", "G1", 10)
	f.addFloor(t, "f2", "p1", "L2", "T1", "G1", 15)

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 30),
	})
	require.NoError(t, err)
	require.Len(t, plan.Lines, 1)

	lp := plan.Lines[0]
	assert.Equal(t, separation.StatusPartial, lp.Status)
	assert.True(t, lp.Consumed.Equal(d(25)), "consumido: esperado 25, obtenido %s", lp.Consumed)
	assert.True(t, lp.Remainder.Equal(d(5)), "faltante: esperado 5, obtenido %s", lp.Remainder)

	require.Len(t, lp.Details, 2)
	assert.Equal(t, separation.SourceFloorExact, lp.Details[0].Source)
	assert.True(t, lp.Details[0].Quantity.Equal(d(10)))
	assert.Equal(t, separation.SourceFloorOtherLot, lp.Details[1].Source)
	assert.Equal(t, "L2", lp.Details[1].Lot)
	assert.True(t, lp.Details[1].Quantity.Equal(d(15)))
}

// Dentro de cada nivel el piso se consume antes que las vagas.
func TestPlan_PisoAntesQueVagasEnCadaNivel(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "L1", "T1", "G1", 4)
	f.addSlot(t, "s1", "p1", "L1", "T1", "G1", 1, true) // 10 unidades

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 10),
	})
	require.NoError(t, err)

	lp := plan.Lines[0]
	assert.Equal(t, separation.StatusSatisfied, lp.Status)
	require.Len(t, lp.Details, 2)
	assert.Equal(t, separation.SourceFloorExact, lp.Details[0].Source)
	assert.Equal(t, separation.SourceSlotExact, lp.Details[1].Source)
	assert.True(t, lp.Details[1].Quantity.Equal(d(6)), "la vaga solo cubre el resto")
}

// Nivel C: mismo calibre, otra tonalidad, lote indiferente.
func TestPlan_NivelOtraTonalidad(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "L9", "T2", "G1", 8)

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 8),
	})
	require.NoError(t, err)

	lp := plan.Lines[0]
	assert.Equal(t, separation.StatusSatisfied, lp.Status)
	require.Len(t, lp.Details, 1)
	assert.Equal(t, separation.SourceFloorOtherTonality, lp.Details[0].Source)
	assert.Equal(t, "T2", lp.Details[0].Tonality)
}

// Otro calibre jamás participa, ni siquiera con tonalidad y lote coincidentes.
func TestPlan_OtroCalibreNoParticipa(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "L1", "T1", "G2", 100)

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 10),
	})
	require.NoError(t, err)
	assert.Equal(t, separation.StatusUnsatisfied, plan.Lines[0].Status)
	assert.Empty(t, plan.Lines[0].Details)
}

// Las vagas no disponibles no son oferta.
func TestPlan_IgnoraVagasNoDisponibles(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addSlot(t, "s1", "p1", "L1", "T1", "G1", 5, false)

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 10),
	})
	require.NoError(t, err)
	assert.Equal(t, separation.StatusUnsatisfied, plan.Lines[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Oferta compartida entre líneas y usos de vaga
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas sobre la misma variante comparten oferta: la primera agota y la segunda
// queda insatisfecha. El uso de la vaga se agrega deduplicado.
func TestPlan_OfertaCompartidaYUsosAgregados(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addSlot(t, "s1", "p1", "L1", "T1", "G1", 2, true) // 20 unidades

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 12),
		line("p1", "T1", "G1", "L1", 12),
	})
	require.NoError(t, err)
	require.Len(t, plan.Lines, 2)

	assert.Equal(t, separation.StatusSatisfied, plan.Lines[0].Status)
	assert.Equal(t, separation.StatusPartial, plan.Lines[1].Status)
	assert.True(t, plan.Lines[1].Consumed.Equal(d(8)), "solo quedan 8 unidades en la vaga")

	require.Len(t, plan.SlotUsages, 1, "una vaga usada por dos líneas aparece una vez")
	u := plan.SlotUsages[0]
	assert.Equal(t, "s1", u.SlotID)
	assert.True(t, u.Quantity.Equal(d(20)), "uso agregado a través de las líneas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestPlan_LoteVacio(t *testing.T) {
	f := newPlannerFixture(t)
	_, err := f.uc.PlanSeparation(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una línea inválida no consume oferta ni invalida el resto del lote.
func TestPlan_LineaInvalidaNoContamina(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "L1", "T1", "G1", 10)

	plan, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("nope", "T1", "G1", "L1", 5),
		line("p1", "T1", "G1", "L1", 0),
		line("p1", "T1", "G1", "L1", 10),
	})
	require.NoError(t, err)
	require.Len(t, plan.Lines, 3)

	assert.Equal(t, separation.StatusInvalid, plan.Lines[0].Status)
	assert.NotEmpty(t, plan.Lines[0].Reason)
	assert.Equal(t, separation.StatusInvalid, plan.Lines[1].Status)
	assert.Equal(t, separation.StatusSatisfied, plan.Lines[2].Status,
		"las líneas inválidas no deben haber consumido oferta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Determinismo y solo-lectura
// ──────────────────────────────────────────────────────────────────────────────

// Dos corridas sobre los mismos datos producen planes idénticos, también con varias
// variantes candidatas en el mismo nivel.
func TestPlan_Determinista(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "LB", "T1", "G1", 5)
	f.addFloor(t, "f2", "p1", "LA", "T1", "G1", 5)
	f.addFloor(t, "f3", "p1", "LC", "T1", "G1", 5)
	f.addSlot(t, "s2", "p1", "LA", "T1", "G1", 1, true)
	f.addSlot(t, "s1", "p1", "LB", "T1", "G1", 1, true)

	batch := []separation.DemandLine{line("p1", "T1", "G1", "LZ", 30)}

	first, err := f.uc.PlanSeparation(context.Background(), batch)
	require.NoError(t, err)
	second, err := f.uc.PlanSeparation(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, first, second, "el plan debe ser reproducible corrida a corrida")

	// El nivel B recorre los lotes en orden ascendente
	lp := first.Lines[0]
	require.True(t, len(lp.Details) >= 3)
	assert.Equal(t, "LA", lp.Details[0].Lot)
	assert.Equal(t, "LB", lp.Details[1].Lot)
	assert.Equal(t, "LC", lp.Details[2].Lot)
}

// Planificar no muta ninguno de los dos pools.
func TestPlan_NoMutaStock(t *testing.T) {
	f := newPlannerFixture(t)
	f.addProduct(t, "p1", 10)
	f.addFloor(t, "f1", "p1", "L1", "T1", "G1", 10)
	f.addSlot(t, "s1", "p1", "L1", "T1", "G1", 2, true)

	_, err := f.uc.PlanSeparation(context.Background(), []separation.DemandLine{
		line("p1", "T1", "G1", "L1", 30),
	})
	require.NoError(t, err)

	items, err := memory.NewFloorStockRepository(f.store).ListByProduct("p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Quantity.Equal(d(10)), "el piso no debe mutarse")

	slot, err := memory.NewSlotRepository(f.store).GetByID("s1")
	require.NoError(t, err)
	assert.True(t, slot.BoxCount.Equal(d(2)), "la vaga no debe mutarse")
	assert.True(t, slot.Available)
}
