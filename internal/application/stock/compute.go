package stock

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// ComputeStockUseCase agregador de solo lectura: responde "cuánto stock existe" sumando
// los dos pools físicos — ledger de piso y vagas disponibles. No toca los agregados
// legados del producto ni produce efectos secundarios.
type ComputeStockUseCase struct {
	productRepo repository.ProductRepository
	floorRepo   repository.FloorStockRepository
	slotRepo    repository.SlotRepository
}

// NewComputeStockUseCase construye el caso de uso.
func NewComputeStockUseCase(
	productRepo repository.ProductRepository,
	floorRepo repository.FloorStockRepository,
	slotRepo repository.SlotRepository,
) *ComputeStockUseCase {
	return &ComputeStockUseCase{productRepo: productRepo, floorRepo: floorRepo, slotRepo: slotRepo}
}

// StockSummary totales de stock de un producto en unidades de venta.
type StockSummary struct {
	FloorTotal   decimal.Decimal
	DepositTotal decimal.Decimal
	GrandTotal   decimal.Decimal
}

// Origen de una fila de detalle.
const (
	DetailSourceFloor = "floor"
	DetailSourceSlot  = "slot"
)

// DetailRow fila de detalle por variante. Para piso Quantity ya está en unidades de
// venta; para vagas Quantity son cajas y Units su conversión con unitsPerBox.
type DetailRow struct {
	Source   string
	Lot      string
	Tonality string
	Gauge    string
	Quantity decimal.Decimal
	Units    decimal.Decimal
	SlotID   string // solo cuando Source == "slot"
}

// ComputeStock suma el ledger de piso y la capacidad de vagas disponibles del producto.
func (uc *ComputeStockUseCase) ComputeStock(ctx context.Context, productID string) (*StockSummary, error) {
	product, items, slots, err := uc.load(productID)
	if err != nil {
		return nil, err
	}

	floorTotal := decimal.Zero
	for _, it := range items {
		floorTotal = floorTotal.Add(it.Quantity)
	}

	depositTotal := decimal.Zero
	for _, s := range slots {
		depositTotal = depositTotal.Add(s.Capacity(product.UnitsPerBox))
	}

	return &StockSummary{
		FloorTotal:   floorTotal,
		DepositTotal: depositTotal,
		GrandTotal:   floorTotal.Add(depositTotal),
	}, nil
}

// StockDetail devuelve las filas por variante de ambos pools: primero el ledger de piso
// (orden FIFO) y después las vagas disponibles (id ascendente).
func (uc *ComputeStockUseCase) StockDetail(ctx context.Context, productID string) ([]DetailRow, error) {
	product, items, slots, err := uc.load(productID)
	if err != nil {
		return nil, err
	}

	rows := make([]DetailRow, 0, len(items)+len(slots))
	for _, it := range items {
		rows = append(rows, DetailRow{
			Source:   DetailSourceFloor,
			Lot:      it.Lot,
			Tonality: it.Tonality,
			Gauge:    it.Gauge,
			Quantity: it.Quantity,
			Units:    it.Quantity,
		})
	}
	for _, s := range slots {
		boxes := decimal.Zero
		if s.BoxCount != nil {
			boxes = *s.BoxCount
		}
		lot := ""
		if s.Lot != nil {
			lot = *s.Lot
		}
		rows = append(rows, DetailRow{
			Source:   DetailSourceSlot,
			Lot:      lot,
			Tonality: s.Tonality,
			Gauge:    s.Gauge,
			Quantity: boxes,
			Units:    s.Capacity(product.UnitsPerBox),
			SlotID:   s.ID,
		})
	}
	return rows, nil
}

// load valida el producto y trae ambos pools. unitsPerBox <= 0 se rechaza en el borde:
// sin un factor válido no hay conversión caja→unidad posible.
func (uc *ComputeStockUseCase) load(productID string) (*entity.Product, []*entity.FloorStockItem, []*entity.WarehouseSlot, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, nil, err
	}
	if product == nil {
		return nil, nil, nil, fmt.Errorf("calcular stock producto %s: %w", productID, domain.ErrNotFound)
	}
	if !product.UnitsPerBox.IsPositive() {
		return nil, nil, nil, fmt.Errorf("producto %s con unitsPerBox no positivo: %w", productID, domain.ErrInvalidInput)
	}

	items, err := uc.floorRepo.ListByProduct(productID)
	if err != nil {
		return nil, nil, nil, err
	}
	slots, err := uc.slotRepo.ListAvailableByProduct(productID)
	if err != nil {
		return nil, nil, nil, err
	}
	return product, items, slots, nil
}
