package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obratex/deposito-api/internal/application/dto"
	"github.com/obratex/deposito-api/internal/application/stock"
)

// StockHandler maneja consulta de stock y movimientos del ledger de piso.
type StockHandler struct {
	compute  *stock.ComputeStockUseCase
	movement *stock.MovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(compute *stock.ComputeStockUseCase, movement *stock.MovementUseCase) *StockHandler {
	return &StockHandler{compute: compute, movement: movement}
}

// GetStock godoc
// @Summary      Totales de stock de un producto (piso + depósito direccionado)
// @Tags         stock
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId} [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("productId")
	summary, err := h.compute.ComputeStock(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.StockSummaryResponse{
		ProductID:    productID,
		FloorTotal:   summary.FloorTotal,
		DepositTotal: summary.DepositTotal,
		GrandTotal:   summary.GrandTotal,
	})
}

// GetStockDetail godoc
// @Summary      Detalle de stock por variante (filas de piso y vagas disponibles)
// @Tags         stock
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}   dto.StockDetailRowDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId}/detail [get]
func (h *StockHandler) GetStockDetail(c *fiber.Ctx) error {
	rows, err := h.compute.StockDetail(c.Context(), c.Params("productId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.StockDetailRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockDetailRowDTO{
			Source:   r.Source,
			Lot:      r.Lot,
			Tonality: r.Tonality,
			Gauge:    r.Gauge,
			Quantity: r.Quantity,
			Units:    r.Units,
			SlotID:   r.SlotID,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "rows": out})
}

// Transfer godoc
// @Summary      Transferir cantidad del depósito al piso (upsert en el ledger)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, quantity, lot, tonality, gauge"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/transfers [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.movement.TransferDepositToFloor(c.Context(), stock.TransferInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Lot:       in.Lot,
		Tonality:  in.Tonality,
		Gauge:     in.Gauge,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "transferencia registrada"})
}

// Withdraw godoc
// @Summary      Retirar cantidad del piso (variante exacta o FIFO)
// @Description  Con lot, tonality y gauge informados el retiro es por variante exacta;
//
//	con los tres vacíos recorre el producto en orden FIFO. El faltante FIFO
//	confirma lo consumido y responde 422.
//
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawRequest  true  "product_id, quantity, variante opcional"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/withdrawals [post]
func (h *StockHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.movement.WithdrawFromFloor(c.Context(), stock.WithdrawInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Lot:       in.Lot,
		Tonality:  in.Tonality,
		Gauge:     in.Gauge,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "retiro registrado"})
}
