package stock

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

// MovementUseCase lado de escritura del ledger de piso: transferencias depósito→piso
// (upsert por variante) y retiros (variante exacta o FIFO).
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// TransferInput entrada para TransferDepositToFloor. Los tres campos de variante son
// obligatorios.
type TransferInput struct {
	ProductID string
	Quantity  decimal.Decimal
	Lot       string
	Tonality  string
	Gauge     string
}

// WithdrawInput entrada para WithdrawFromFloor. Con Lot, Tonality y Gauge informados el
// retiro es por variante exacta; con los tres vacíos recorre el producto en orden FIFO.
type WithdrawInput struct {
	ProductID string
	Quantity  decimal.Decimal
	Lot       string
	Tonality  string
	Gauge     string
}

// TransferDepositToFloor acredita cantidad suelta en el ledger: suma sobre la fila de la
// variante si existe, o la crea. No descuenta ninguna vaga — el caller que necesite el
// decremento simétrico del lado direccionado debe hacerlo por su cuenta.
func (uc *MovementUseCase) TransferDepositToFloor(ctx context.Context, in TransferInput) error {
	if !in.Quantity.IsPositive() {
		return fmt.Errorf("transferencia producto %s: cantidad no positiva: %w", in.ProductID, domain.ErrInvalidInput)
	}
	if in.Lot == "" || in.Tonality == "" || in.Gauge == "" {
		return fmt.Errorf("transferencia producto %s: lote, tonalidad y calibre son obligatorios: %w", in.ProductID, domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("transferencia: producto %s: %w", in.ProductID, domain.ErrNotFound)
	}

	key := entity.VariantKey{ProductID: in.ProductID, Tonality: in.Tonality, Gauge: in.Gauge, Lot: in.Lot}

	return uc.txRunner.Run(ctx, func(
		floorRepo repository.FloorStockRepository,
		_ repository.ProductRepository,
	) error {
		item, err := floorRepo.GetByVariantForUpdate(key)
		if err != nil {
			return err
		}
		if item == nil {
			return floorRepo.Create(&entity.FloorStockItem{
				ID:        uuid.New().String(),
				ProductID: in.ProductID,
				Lot:       in.Lot,
				Tonality:  in.Tonality,
				Gauge:     in.Gauge,
				Quantity:  in.Quantity,
				CreatedAt: time.Now(),
			})
		}
		return floorRepo.UpdateQuantity(item.ID, item.Quantity.Add(in.Quantity))
	})
}

// WithdrawFromFloor descuenta cantidad del ledger de piso.
//
// Variante exacta: localiza la única fila; ErrNotFound si no existe, ErrInsufficientStock
// si la cantidad pedida excede la fila; si llega exactamente a cero la elimina. Todo en
// una transacción que se revierte completa ante fallo.
//
// FIFO (campos de variante vacíos): consume las filas del producto en orden de creación
// ascendente, eliminando las agotadas. Si al terminar el recorrido queda demanda sin
// cubrir, las mutaciones ya aplicadas SE CONFIRMAN igual y se devuelve
// ErrInsufficientStock con el faltante; el caller que necesite atomicidad estricta debe
// pre-verificar con ComputeStock o envolver la llamada en su propia transacción.
func (uc *MovementUseCase) WithdrawFromFloor(ctx context.Context, in WithdrawInput) error {
	if !in.Quantity.IsPositive() {
		return fmt.Errorf("retiro producto %s: cantidad no positiva: %w", in.ProductID, domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("retiro: producto %s: %w", in.ProductID, domain.ErrNotFound)
	}

	exact := in.Lot != "" && in.Tonality != "" && in.Gauge != ""
	none := in.Lot == "" && in.Tonality == "" && in.Gauge == ""
	if !exact && !none {
		return fmt.Errorf("retiro producto %s: variante incompleta (lote/tonalidad/calibre van juntos o vacíos): %w", in.ProductID, domain.ErrInvalidInput)
	}

	if exact {
		return uc.withdrawExact(ctx, in)
	}
	return uc.withdrawFIFO(ctx, in)
}

func (uc *MovementUseCase) withdrawExact(ctx context.Context, in WithdrawInput) error {
	key := entity.VariantKey{ProductID: in.ProductID, Tonality: in.Tonality, Gauge: in.Gauge, Lot: in.Lot}

	return uc.txRunner.Run(ctx, func(
		floorRepo repository.FloorStockRepository,
		_ repository.ProductRepository,
	) error {
		item, err := floorRepo.GetByVariantForUpdate(key)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("retiro exacto: %s: %w", key, domain.ErrNotFound)
		}
		if in.Quantity.GreaterThan(item.Quantity) {
			return fmt.Errorf("retiro exacto %s: pedido %s, disponible %s: %w",
				key, in.Quantity, item.Quantity, domain.ErrInsufficientStock)
		}
		rest := item.Quantity.Sub(in.Quantity)
		if rest.IsZero() {
			// Fila agotada exacta: nunca se persiste una fila en cero
			return floorRepo.Delete(item.ID)
		}
		return floorRepo.UpdateQuantity(item.ID, rest)
	})
}

func (uc *MovementUseCase) withdrawFIFO(ctx context.Context, in WithdrawInput) error {
	remaining := in.Quantity

	err := uc.txRunner.Run(ctx, func(
		floorRepo repository.FloorStockRepository,
		_ repository.ProductRepository,
	) error {
		items, err := floorRepo.ListByProductForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if !remaining.IsPositive() {
				break
			}
			take := decimal.Min(remaining, item.Quantity)
			rest := item.Quantity.Sub(take)
			if rest.IsZero() {
				if err := floorRepo.Delete(item.ID); err != nil {
					return err
				}
			} else {
				if err := floorRepo.UpdateQuantity(item.ID, rest); err != nil {
					return err
				}
			}
			remaining = remaining.Sub(take)
		}
		// El walk FIFO confirma lo consumido aunque quede faltante
		return nil
	})
	if err != nil {
		return err
	}

	if remaining.IsPositive() {
		return fmt.Errorf("retiro FIFO producto %s: faltan %s unidades tras agotar el piso: %w",
			in.ProductID, remaining, domain.ErrInsufficientStock)
	}
	return nil
}
