package lists

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// ListUseCase máquina de estados sobre listas de vagas: Open ⇄ Finalized, repetible.
//
// Finalizar marca las vagas no disponibles y migra boxCount × unitsPerBox del agregado
// depósito al agregado piso de cada producto; reabrir revierte el movimiento exacto.
// Ambas operaciones corren en una sola transacción con bloqueo de filas de producto.
type ListUseCase struct {
	txRunner TxRunner
	listRepo repository.ListRepository
	slotRepo repository.SlotRepository
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(txRunner TxRunner, listRepo repository.ListRepository, slotRepo repository.SlotRepository) *ListUseCase {
	return &ListUseCase{txRunner: txRunner, listRepo: listRepo, slotRepo: slotRepo}
}

// Create crea una lista vacía y abierta. Nombre obligatorio y único (ErrDuplicate).
func (uc *ListUseCase) Create(ctx context.Context, name string) (*entity.List, error) {
	if name == "" {
		return nil, fmt.Errorf("crear lista: nombre obligatorio: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	l := &entity.List{
		ID:        uuid.New().String(),
		Name:      name,
		Open:      true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.listRepo.Create(l); err != nil {
		return nil, fmt.Errorf("crear lista %q: %w", name, err)
	}
	return l, nil
}

// GetByID devuelve la lista o ErrNotFound.
func (uc *ListUseCase) GetByID(ctx context.Context, id string) (*entity.List, error) {
	l, err := uc.listRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("lista %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

// List lista con paginación.
func (uc *ListUseCase) List(ctx context.Context, limit, offset int) ([]*entity.List, error) {
	return uc.listRepo.List(limit, offset)
}

// Delete elimina una lista. Rechazado con ErrHasDependents mientras cualquier vaga la
// referencie, en cualquier estado.
func (uc *ListUseCase) Delete(ctx context.Context, id string) error {
	l, err := uc.listRepo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("eliminar lista %s: %w", id, domain.ErrNotFound)
	}
	count, err := uc.slotRepo.CountByList(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("eliminar lista %s: %d vagas vinculadas: %w", id, count, domain.ErrHasDependents)
	}
	return uc.listRepo.Delete(id)
}

// Finalize pasa la lista de Open a Finalized: cada vaga queda no disponible y, si
// registra cajas, mueve boxCount × unitsPerBox de depositQuantity a floorQuantity del
// producto. ErrInsufficientStock si algún depósito quedaría negativo; cualquier fallo
// revierte todas las mutaciones de esta llamada.
func (uc *ListUseCase) Finalize(ctx context.Context, listID string) error {
	return uc.txRunner.RunLists(ctx, func(
		slotRepo repository.SlotRepository,
		productRepo repository.ProductRepository,
		listRepo repository.ListRepository,
	) error {
		l, err := listRepo.GetForUpdate(listID)
		if err != nil {
			return err
		}
		if l == nil {
			return fmt.Errorf("finalizar lista %s: %w", listID, domain.ErrNotFound)
		}
		if !l.Open {
			return fmt.Errorf("finalizar lista %s: ya finalizada: %w", listID, domain.ErrInvalidState)
		}
		if err := uc.moveSlots(slotRepo, productRepo, listID, false); err != nil {
			return err
		}
		return listRepo.UpdateOpen(listID, false)
	})
}

// Unfinalize espejo exacto de Finalize: vagas disponibles de nuevo y movimiento de
// cantidades revertido (ErrInsufficientStock si algún piso quedaría negativo).
func (uc *ListUseCase) Unfinalize(ctx context.Context, listID string) error {
	return uc.txRunner.RunLists(ctx, func(
		slotRepo repository.SlotRepository,
		productRepo repository.ProductRepository,
		listRepo repository.ListRepository,
	) error {
		l, err := listRepo.GetForUpdate(listID)
		if err != nil {
			return err
		}
		if l == nil {
			return fmt.Errorf("reabrir lista %s: %w", listID, domain.ErrNotFound)
		}
		if l.Open {
			return fmt.Errorf("reabrir lista %s: no está finalizada: %w", listID, domain.ErrInvalidState)
		}
		if err := uc.moveSlots(slotRepo, productRepo, listID, true); err != nil {
			return err
		}
		return listRepo.UpdateOpen(listID, true)
	})
}

// moveSlots aplica el flip de disponibilidad y acumula el movimiento de agregados por
// producto. reopen=false: available=false, depósito -= movido, piso += movido.
// reopen=true: el espejo. Los productos se bloquean una sola vez (FOR UPDATE) y se
// persisten al final en orden de id para que dos finalizaciones concurrentes sobre los
// mismos productos se serialicen en el mismo orden.
func (uc *ListUseCase) moveSlots(
	slotRepo repository.SlotRepository,
	productRepo repository.ProductRepository,
	listID string,
	reopen bool,
) error {
	slots, err := slotRepo.ListByList(listID)
	if err != nil {
		return err
	}

	products := make(map[string]*entity.Product)
	for _, slot := range slots {
		slot.Available = reopen
		if err := slotRepo.Update(slot); err != nil {
			return err
		}
		if slot.BoxCount == nil {
			continue
		}

		p, ok := products[slot.ProductID]
		if !ok {
			p, err = productRepo.GetForUpdate(slot.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("lista %s: producto %s de la vaga %s: %w", listID, slot.ProductID, slot.ID, domain.ErrNotFound)
			}
			if !p.UnitsPerBox.IsPositive() {
				return fmt.Errorf("lista %s: producto %s con unitsPerBox no positivo: %w", listID, p.ID, domain.ErrInvalidInput)
			}
			products[slot.ProductID] = p
		}

		moved := slot.BoxCount.Mul(p.UnitsPerBox)
		if reopen {
			if p.FloorQuantity.Sub(moved).IsNegative() {
				return fmt.Errorf("reabrir lista %s: producto %s quedaría con piso negativo (piso %s, movido %s): %w",
					listID, p.ID, p.FloorQuantity, moved, domain.ErrInsufficientStock)
			}
			p.DepositQuantity = p.DepositQuantity.Add(moved)
			p.FloorQuantity = p.FloorQuantity.Sub(moved)
		} else {
			if p.DepositQuantity.Sub(moved).IsNegative() {
				return fmt.Errorf("finalizar lista %s: producto %s sin depósito suficiente (depósito %s, movido %s): %w",
					listID, p.ID, p.DepositQuantity, moved, domain.ErrInsufficientStock)
			}
			p.DepositQuantity = p.DepositQuantity.Sub(moved)
			p.FloorQuantity = p.FloorQuantity.Add(moved)
		}
	}

	ids := make([]string, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := products[id]
		if err := productRepo.UpdateQuantities(id, p.DepositQuantity, p.FloorQuantity); err != nil {
			return err
		}
	}
	return nil
}
