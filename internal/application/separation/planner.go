package separation

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// PlannerUseCase resuelve demanda externa de separación contra los dos pools de stock
// sin mutar nada: un dry-run que produce un plan auditable; la confirmación que ejecuta
// los movimientos físicos es un paso posterior, fuera de este caso de uso.
//
// Algoritmo: greedy por línea en orden de entrada, con fallback en tres niveles —
// variante exacta, mismo artículo con otro lote, mismo calibre con otra tonalidad. En
// cada nivel se consume primero el piso y después las vagas disponibles. Toda
// enumeración de candidatos sigue un orden explícito estable (piso por tonalidad y
// lote ascendentes, vagas por id ascendente) para que dos corridas sobre los mismos
// datos produzcan planes idénticos.
type PlannerUseCase struct {
	productRepo repository.ProductRepository
	floorRepo   repository.FloorStockRepository
	slotRepo    repository.SlotRepository
}

// NewPlannerUseCase construye el planificador.
func NewPlannerUseCase(
	productRepo repository.ProductRepository,
	floorRepo repository.FloorStockRepository,
	slotRepo repository.SlotRepository,
) *PlannerUseCase {
	return &PlannerUseCase{productRepo: productRepo, floorRepo: floorRepo, slotRepo: slotRepo}
}

// DemandLine una línea de demanda externa, en unidades de venta.
type DemandLine struct {
	ProductID string
	Tonality  string
	Gauge     string
	Lot       string
	Quantity  decimal.Decimal
}

// Estados por línea tras todos los niveles.
const (
	StatusSatisfied   = "satisfied"   // consumido == pedido
	StatusPartial     = "partial"     // 0 < consumido < pedido
	StatusUnsatisfied = "unsatisfied" // consumido == 0
	StatusInvalid     = "invalid"     // entrada inválida, excluida del consumo
)

// Etiquetas de origen de cada asignación.
const (
	SourceFloorExact         = "floor-exact"
	SourceSlotExact          = "slot-exact"
	SourceFloorOtherLot      = "floor-other-lot"
	SourceSlotOtherLot       = "slot-other-lot"
	SourceFloorOtherTonality = "floor-other-tonality"
	SourceSlotOtherTonality  = "slot-other-tonality"
)

// Detail una asignación individual dentro de una línea, en orden de consumo.
type Detail struct {
	Source   string          // etiqueta de origen (floor-exact, slot-other-lot, ...)
	Lot      string          // lote de origen
	Tonality string          // tonalidad de origen
	Quantity decimal.Decimal // unidades asignadas
	SlotID   string          // referencia a la vaga cuando el origen es slot-*
}

// LinePlan resultado por línea de demanda.
type LinePlan struct {
	Line      DemandLine
	Status    string
	Consumed  decimal.Decimal
	Remainder decimal.Decimal
	Reason    string // motivo cuando Status == invalid
	Details   []Detail
}

// SlotUsage uso agregado de una vaga a través de todas las líneas, para la confirmación
// posterior.
type SlotUsage struct {
	SlotID    string
	ProductID string
	Quantity  decimal.Decimal
}

// Plan resultado completo de una corrida de planificación.
type Plan struct {
	Lines      []LinePlan
	SlotUsages []SlotUsage // deduplicado, orden por id de vaga ascendente
}

// floorBucket oferta de piso agregada por variante.
type floorBucket struct {
	key       entity.VariantKey
	remaining decimal.Decimal
}

// slotBucket oferta de una vaga disponible, con capacidad restante en unidades.
type slotBucket struct {
	slotID    string
	key       entity.VariantKey
	remaining decimal.Decimal
}

// productSupply oferta de un producto: piso ordenado por (tonalidad, calibre, lote) y
// vagas ordenadas por id.
type productSupply struct {
	product *entity.Product
	floor   []*floorBucket
	slots   []*slotBucket
}

// PlanSeparation planifica el lote de demanda contra el estado actual de los pools.
// Nunca falla por insuficiencia (eso se expresa en el estado por línea); solo devuelve
// ErrInvalidInput ante un lote estructuralmente inválido (vacío).
func (uc *PlannerUseCase) PlanSeparation(ctx context.Context, batch []DemandLine) (*Plan, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("planificar separación: lote vacío: %w", domain.ErrInvalidInput)
	}

	supplies := make(map[string]*productSupply)
	usages := make(map[string]*SlotUsage)

	plan := &Plan{Lines: make([]LinePlan, 0, len(batch))}
	for _, line := range batch {
		lp, err := uc.planLine(line, supplies, usages)
		if err != nil {
			return nil, err
		}
		plan.Lines = append(plan.Lines, lp)
	}

	plan.SlotUsages = make([]SlotUsage, 0, len(usages))
	for _, u := range usages {
		plan.SlotUsages = append(plan.SlotUsages, *u)
	}
	sort.Slice(plan.SlotUsages, func(i, j int) bool {
		return plan.SlotUsages[i].SlotID < plan.SlotUsages[j].SlotID
	})

	return plan, nil
}

func (uc *PlannerUseCase) planLine(
	line DemandLine,
	supplies map[string]*productSupply,
	usages map[string]*SlotUsage,
) (LinePlan, error) {
	lp := LinePlan{Line: line, Consumed: decimal.Zero, Remainder: line.Quantity}

	// Líneas inválidas cortocircuitan antes del nivel exacto y no consumen oferta
	sup, err := uc.loadSupply(line.ProductID, supplies)
	if err != nil {
		return lp, err
	}
	switch {
	case sup == nil:
		lp.Status = StatusInvalid
		lp.Reason = fmt.Sprintf("producto %s no encontrado", line.ProductID)
		return lp, nil
	case !sup.product.UnitsPerBox.IsPositive():
		lp.Status = StatusInvalid
		lp.Reason = fmt.Sprintf("producto %s con unitsPerBox no positivo", line.ProductID)
		return lp, nil
	case !line.Quantity.IsPositive():
		lp.Status = StatusInvalid
		lp.Reason = "cantidad pedida no positiva"
		return lp, nil
	}

	want := entity.VariantKey{ProductID: line.ProductID, Tonality: line.Tonality, Gauge: line.Gauge, Lot: line.Lot}

	passes := []struct {
		match    func(entity.VariantKey) bool
		floorTag string
		slotTag  string
	}{
		// Nivel A: variante exacta
		{func(k entity.VariantKey) bool { return k == want }, SourceFloorExact, SourceSlotExact},
		// Nivel B: mismo artículo, otro lote
		{func(k entity.VariantKey) bool { return k.SameArticle(want) && k.Lot != want.Lot }, SourceFloorOtherLot, SourceSlotOtherLot},
		// Nivel C: mismo calibre, otra tonalidad (lote indiferente)
		{func(k entity.VariantKey) bool { return k.SameGauge(want) && k.Tonality != want.Tonality }, SourceFloorOtherTonality, SourceSlotOtherTonality},
	}

	for _, pass := range passes {
		if !lp.Remainder.IsPositive() {
			break
		}
		consumeFloor(sup, pass.match, pass.floorTag, &lp)
		consumeSlots(sup, pass.match, pass.slotTag, &lp, usages)
	}

	switch {
	case lp.Remainder.IsZero():
		lp.Status = StatusSatisfied
	case lp.Consumed.IsPositive():
		lp.Status = StatusPartial
	default:
		lp.Status = StatusUnsatisfied
	}
	return lp, nil
}

func consumeFloor(sup *productSupply, match func(entity.VariantKey) bool, tag string, lp *LinePlan) {
	for _, b := range sup.floor {
		if !lp.Remainder.IsPositive() {
			return
		}
		if !b.remaining.IsPositive() || !match(b.key) {
			continue
		}
		take := decimal.Min(lp.Remainder, b.remaining)
		b.remaining = b.remaining.Sub(take)
		lp.Consumed = lp.Consumed.Add(take)
		lp.Remainder = lp.Remainder.Sub(take)
		lp.Details = append(lp.Details, Detail{
			Source:   tag,
			Lot:      b.key.Lot,
			Tonality: b.key.Tonality,
			Quantity: take,
		})
	}
}

func consumeSlots(sup *productSupply, match func(entity.VariantKey) bool, tag string, lp *LinePlan, usages map[string]*SlotUsage) {
	for _, b := range sup.slots {
		if !lp.Remainder.IsPositive() {
			return
		}
		if !b.remaining.IsPositive() || !match(b.key) {
			continue
		}
		take := decimal.Min(lp.Remainder, b.remaining)
		b.remaining = b.remaining.Sub(take)
		lp.Consumed = lp.Consumed.Add(take)
		lp.Remainder = lp.Remainder.Sub(take)
		lp.Details = append(lp.Details, Detail{
			Source:   tag,
			Lot:      b.key.Lot,
			Tonality: b.key.Tonality,
			Quantity: take,
			SlotID:   b.slotID,
		})

		u, ok := usages[b.slotID]
		if !ok {
			u = &SlotUsage{SlotID: b.slotID, ProductID: b.key.ProductID, Quantity: decimal.Zero}
			usages[b.slotID] = u
		}
		u.Quantity = u.Quantity.Add(take)
	}
}

// loadSupply construye (una vez por producto y corrida) los índices de oferta: piso
// agregado por variante y vagas disponibles con su capacidad restante. Devuelve nil
// sin error si el producto no existe.
func (uc *PlannerUseCase) loadSupply(productID string, supplies map[string]*productSupply) (*productSupply, error) {
	if sup, ok := supplies[productID]; ok {
		return sup, nil
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		supplies[productID] = nil
		return nil, nil
	}

	sup := &productSupply{product: product}

	items, err := uc.floorRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	byKey := make(map[entity.VariantKey]*floorBucket)
	for _, it := range items {
		key := it.Variant()
		b, ok := byKey[key]
		if !ok {
			b = &floorBucket{key: key, remaining: decimal.Zero}
			byKey[key] = b
			sup.floor = append(sup.floor, b)
		}
		b.remaining = b.remaining.Add(it.Quantity)
	}
	// Orden explícito: tonalidad, calibre, lote — el orden de los niveles B y C
	sort.Slice(sup.floor, func(i, j int) bool {
		a, b := sup.floor[i].key, sup.floor[j].key
		if a.Tonality != b.Tonality {
			return a.Tonality < b.Tonality
		}
		if a.Gauge != b.Gauge {
			return a.Gauge < b.Gauge
		}
		return a.Lot < b.Lot
	})

	slots, err := uc.slotRepo.ListAvailableByProduct(productID)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		capacity := s.Capacity(product.UnitsPerBox)
		if !capacity.IsPositive() {
			continue
		}
		sup.slots = append(sup.slots, &slotBucket{
			slotID:    s.ID,
			key:       s.Variant(),
			remaining: capacity,
		})
	}
	// Orden explícito por id de vaga, no el orden ambiente del repositorio
	sort.Slice(sup.slots, func(i, j int) bool { return sup.slots[i].slotID < sup.slots[j].slotID })

	supplies[productID] = sup
	return sup, nil
}
