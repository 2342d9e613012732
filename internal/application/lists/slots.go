package lists

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// Límites para la creación masiva de vagas.
const (
	BulkCountMin = 1
	BulkCountMax = 100
)

// SlotUseCase creación (unitaria y masiva) y eliminación de vagas.
type SlotUseCase struct {
	txRunner     TxRunner
	slotRepo     repository.SlotRepository
	productRepo  repository.ProductRepository
	buildingRepo repository.BuildingRepository
	listRepo     repository.ListRepository
}

// NewSlotUseCase construye el caso de uso.
func NewSlotUseCase(
	txRunner TxRunner,
	slotRepo repository.SlotRepository,
	productRepo repository.ProductRepository,
	buildingRepo repository.BuildingRepository,
	listRepo repository.ListRepository,
) *SlotUseCase {
	return &SlotUseCase{
		txRunner:     txRunner,
		slotRepo:     slotRepo,
		productRepo:  productRepo,
		buildingRepo: buildingRepo,
		listRepo:     listRepo,
	}
}

// SlotTemplate plantilla para crear vagas. Tonalidad, calibre, producto y galpón son
// obligatorios; lote y cajas opcionales (cajas >= 0); lista opcional y debe estar
// abierta.
type SlotTemplate struct {
	ProductID  string
	BuildingID string
	Tonality   string
	Gauge      string
	Lot        *string
	BoxCount   *decimal.Decimal
	ListID     *string
}

func (uc *SlotUseCase) validateTemplate(t SlotTemplate) error {
	if t.ProductID == "" || t.BuildingID == "" || t.Tonality == "" || t.Gauge == "" {
		return fmt.Errorf("plantilla de vaga: producto, galpón, tonalidad y calibre son obligatorios: %w", domain.ErrInvalidInput)
	}
	if t.BoxCount != nil && t.BoxCount.IsNegative() {
		return fmt.Errorf("plantilla de vaga: cajas negativas (%s): %w", t.BoxCount, domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(t.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("plantilla de vaga: producto %s: %w", t.ProductID, domain.ErrNotFound)
	}
	building, err := uc.buildingRepo.GetByID(t.BuildingID)
	if err != nil {
		return err
	}
	if building == nil {
		return fmt.Errorf("plantilla de vaga: galpón %s: %w", t.BuildingID, domain.ErrNotFound)
	}
	if t.ListID != nil {
		l, err := uc.listRepo.GetByID(*t.ListID)
		if err != nil {
			return err
		}
		if l == nil {
			return fmt.Errorf("plantilla de vaga: lista %s: %w", *t.ListID, domain.ErrNotFound)
		}
		if !l.Open {
			return fmt.Errorf("plantilla de vaga: lista %s finalizada, no admite vagas: %w", *t.ListID, domain.ErrInvalidState)
		}
	}
	return nil
}

func newSlotFrom(t SlotTemplate, now time.Time) *entity.WarehouseSlot {
	return &entity.WarehouseSlot{
		ID:         uuid.New().String(),
		ProductID:  t.ProductID,
		BuildingID: t.BuildingID,
		Tonality:   t.Tonality,
		Gauge:      t.Gauge,
		Lot:        t.Lot,
		BoxCount:   t.BoxCount,
		Available:  true,
		ListID:     t.ListID,
		CreatedAt:  now,
	}
}

// Create crea una vaga individual a partir de la plantilla.
func (uc *SlotUseCase) Create(ctx context.Context, t SlotTemplate) (*entity.WarehouseSlot, error) {
	if err := uc.validateTemplate(t); err != nil {
		return nil, err
	}
	slot := newSlotFrom(t, time.Now())
	if err := uc.slotRepo.Create(slot); err != nil {
		return nil, fmt.Errorf("crear vaga: %w", err)
	}
	return slot, nil
}

// CreateBulk crea count vagas independientes desde una plantilla, en una sola
// transacción: cualquier fallo individual aborta el lote completo. count debe ser un
// entero en [1,100].
func (uc *SlotUseCase) CreateBulk(ctx context.Context, t SlotTemplate, count int) ([]*entity.WarehouseSlot, error) {
	if count < BulkCountMin || count > BulkCountMax {
		return nil, fmt.Errorf("creación masiva: count %d fuera de [%d,%d]: %w",
			count, BulkCountMin, BulkCountMax, domain.ErrInvalidInput)
	}
	if err := uc.validateTemplate(t); err != nil {
		return nil, err
	}

	now := time.Now()
	created := make([]*entity.WarehouseSlot, 0, count)
	err := uc.txRunner.RunLists(ctx, func(
		slotRepo repository.SlotRepository,
		_ repository.ProductRepository,
		_ repository.ListRepository,
	) error {
		for i := 0; i < count; i++ {
			slot := newSlotFrom(t, now)
			if err := slotRepo.Create(slot); err != nil {
				return fmt.Errorf("creación masiva: vaga %d de %d: %w", i+1, count, err)
			}
			created = append(created, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete elimina una vaga. Rechazado con ErrHasDependents mientras siga vinculada a una
// lista: hay que desvincularla primero.
func (uc *SlotUseCase) Delete(ctx context.Context, id string) error {
	slot, err := uc.slotRepo.GetByID(id)
	if err != nil {
		return err
	}
	if slot == nil {
		return fmt.Errorf("eliminar vaga %s: %w", id, domain.ErrNotFound)
	}
	if slot.ListID != nil {
		return fmt.Errorf("eliminar vaga %s: vinculada a la lista %s: %w", id, *slot.ListID, domain.ErrHasDependents)
	}
	return uc.slotRepo.Delete(id)
}
