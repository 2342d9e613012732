package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obratex/deposito-api/internal/application/dto"
	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/domain/entity"
)

// ListHandler maneja el ciclo de vida de listas de vagas.
type ListHandler struct {
	uc *lists.ListUseCase
}

// NewListHandler construye el handler.
func NewListHandler(uc *lists.ListUseCase) *ListHandler {
	return &ListHandler{uc: uc}
}

func toListResponse(l *entity.List) dto.ListResponse {
	return dto.ListResponse{ID: l.ID, Name: l.Name, Open: l.Open, CreatedAt: l.CreatedAt}
}

// Create godoc
// @Summary      Crear una lista vacía y abierta
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListRequest  true  "name (único)"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lists [post]
func (h *ListHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	l, err := h.uc.Create(c.Context(), in.Name)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toListResponse(l))
}

// List godoc
// @Summary      Listar listas
// @Tags         lists
// @Produce      json
// @Success      200  {array}  dto.ListResponse
// @Router       /api/lists [get]
func (h *ListHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	all, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.ListResponse, 0, len(all))
	for _, l := range all {
		out = append(out, toListResponse(l))
	}
	return c.JSON(fiber.Map{"total": len(out), "lists": out})
}

// Delete godoc
// @Summary      Eliminar una lista sin vagas vinculadas
// @Tags         lists
// @Produce      json
// @Param        id  path  string  true  "ID de la lista"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lists/{id} [delete]
func (h *ListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lista eliminada"})
}

// Finalize godoc
// @Summary      Finalizar una lista abierta
// @Description  Marca las vagas no disponibles y mueve cajas × unidades por caja del
//
//	depósito al piso de cada producto, todo-o-nada.
//
// @Tags         lists
// @Produce      json
// @Param        id  path  string  true  "ID de la lista"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/finalize [post]
func (h *ListHandler) Finalize(c *fiber.Ctx) error {
	if err := h.uc.Finalize(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lista finalizada"})
}

// Unfinalize godoc
// @Summary      Reabrir una lista finalizada (espejo exacto de finalizar)
// @Tags         lists
// @Produce      json
// @Param        id  path  string  true  "ID de la lista"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/unfinalize [post]
func (h *ListHandler) Unfinalize(c *fiber.Ctx) error {
	if err := h.uc.Unfinalize(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lista reabierta"})
}
