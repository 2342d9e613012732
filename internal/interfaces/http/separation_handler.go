package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obratex/deposito-api/internal/application/dto"
	"github.com/obratex/deposito-api/internal/application/separation"
)

// SeparationHandler maneja la planificación de separación.
type SeparationHandler struct {
	planner *separation.PlannerUseCase
}

// NewSeparationHandler construye el handler.
func NewSeparationHandler(planner *separation.PlannerUseCase) *SeparationHandler {
	return &SeparationHandler{planner: planner}
}

// Plan godoc
// @Summary      Planificar separación de demanda externa (dry-run, no muta stock)
// @Description  Asignación greedy por niveles: variante exacta, otro lote, otra
//
//	tonalidad. La insuficiencia se expresa por línea (status), nunca como error.
//
// @Tags         separation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SeparationPlanRequest  true  "líneas de demanda"
// @Success      200   {object}  dto.SeparationPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/separations/plan [post]
func (h *SeparationHandler) Plan(c *fiber.Ctx) error {
	var in dto.SeparationPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	batch := make([]separation.DemandLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		batch = append(batch, separation.DemandLine{
			ProductID: l.ProductID,
			Tonality:  l.Tonality,
			Gauge:     l.Gauge,
			Lot:       l.Lot,
			Quantity:  l.Quantity,
		})
	}

	plan, err := h.planner.PlanSeparation(c.Context(), batch)
	if err != nil {
		return respondDomainError(c, err)
	}

	out := dto.SeparationPlanResponse{
		Lines:      make([]dto.LinePlanDTO, 0, len(plan.Lines)),
		SlotUsages: make([]dto.SlotUsageDTO, 0, len(plan.SlotUsages)),
	}
	for _, lp := range plan.Lines {
		details := make([]dto.AllocationDetailDTO, 0, len(lp.Details))
		for _, d := range lp.Details {
			details = append(details, dto.AllocationDetailDTO{
				Source:   d.Source,
				Lot:      d.Lot,
				Tonality: d.Tonality,
				Quantity: d.Quantity,
				SlotID:   d.SlotID,
			})
		}
		out.Lines = append(out.Lines, dto.LinePlanDTO{
			ProductID: lp.Line.ProductID,
			Tonality:  lp.Line.Tonality,
			Gauge:     lp.Line.Gauge,
			Lot:       lp.Line.Lot,
			Requested: lp.Line.Quantity,
			Status:    lp.Status,
			Consumed:  lp.Consumed,
			Remainder: lp.Remainder,
			Reason:    lp.Reason,
			Details:   details,
		})
	}
	for _, u := range plan.SlotUsages {
		out.SlotUsages = append(out.SlotUsages, dto.SlotUsageDTO{
			SlotID:    u.SlotID,
			ProductID: u.ProductID,
			Quantity:  u.Quantity,
		})
	}
	return c.JSON(out)
}
