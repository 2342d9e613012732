package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obratex/deposito-api/internal/application/dto"
	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/domain/entity"
)

// SlotHandler maneja creación (unitaria y masiva) y eliminación de vagas.
type SlotHandler struct {
	uc *lists.SlotUseCase
}

// NewSlotHandler construye el handler.
func NewSlotHandler(uc *lists.SlotUseCase) *SlotHandler {
	return &SlotHandler{uc: uc}
}

func toSlotTemplate(in dto.SlotTemplateRequest) lists.SlotTemplate {
	return lists.SlotTemplate{
		ProductID:  in.ProductID,
		BuildingID: in.BuildingID,
		Tonality:   in.Tonality,
		Gauge:      in.Gauge,
		Lot:        in.Lot,
		BoxCount:   in.BoxCount,
		ListID:     in.ListID,
	}
}

func toSlotResponse(s *entity.WarehouseSlot) dto.SlotResponse {
	return dto.SlotResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		BuildingID: s.BuildingID,
		Tonality:   s.Tonality,
		Gauge:      s.Gauge,
		Lot:        s.Lot,
		BoxCount:   s.BoxCount,
		Available:  s.Available,
		ListID:     s.ListID,
	}
}

// Create godoc
// @Summary      Crear una vaga individual
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SlotTemplateRequest  true  "plantilla de vaga"
// @Success      201   {object}  dto.SlotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/slots [post]
func (h *SlotHandler) Create(c *fiber.Ctx) error {
	var in dto.SlotTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	slot, err := h.uc.Create(c.Context(), toSlotTemplate(in))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSlotResponse(slot))
}

// CreateBulk godoc
// @Summary      Crear hasta 100 vagas independientes desde una plantilla
// @Description  Transaccional: cualquier fallo individual aborta el lote completo.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkSlotsRequest  true  "template + count en [1,100]"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/slots/bulk [post]
func (h *SlotHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkSlotsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	created, err := h.uc.CreateBulk(c.Context(), toSlotTemplate(in.Template), in.Count)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.SlotResponse, 0, len(created))
	for _, s := range created {
		out = append(out, toSlotResponse(s))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"total": len(out), "slots": out})
}

// Delete godoc
// @Summary      Eliminar una vaga desvinculada
// @Tags         slots
// @Produce      json
// @Param        id  path  string  true  "ID de la vaga"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/slots/{id} [delete]
func (h *SlotHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "vaga eliminada"})
}
