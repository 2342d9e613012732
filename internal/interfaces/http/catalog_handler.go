package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obratex/deposito-api/internal/application/catalog"
	"github.com/obratex/deposito-api/internal/application/dto"
	"github.com/obratex/deposito-api/internal/domain/entity"
)

// CatalogHandler maneja los directorios: productos, galpones y proveedores.
type CatalogHandler struct {
	products  *catalog.ProductUseCase
	directory *catalog.DirectoryUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products *catalog.ProductUseCase, directory *catalog.DirectoryUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, directory: directory}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		SupplierID:      p.SupplierID,
		Name:            p.Name,
		UnitsPerBox:     p.UnitsPerBox,
		DepositQuantity: p.DepositQuantity,
		FloorQuantity:   p.FloorQuantity,
		CreatedAt:       p.CreatedAt,
	}
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, units_per_box > 0, supplier_id opcional"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.products.Create(c.Context(), catalog.CreateProductInput{
		Name:        in.Name,
		SupplierID:  in.SupplierID,
		UnitsPerBox: in.UnitsPerBox,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	p, err := h.products.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	all, err := h.products.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(all))
	for _, p := range all {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(fiber.Map{"total": len(out), "products": out})
}

// CreateBuilding godoc
// @Summary      Crear galpón
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBuildingRequest  true  "name"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/buildings [post]
func (h *CatalogHandler) CreateBuilding(c *fiber.Ctx) error {
	var in dto.CreateBuildingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	b, err := h.directory.CreateBuilding(c.Context(), in.Name)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": b.ID, "name": b.Name})
}

// ListBuildings godoc
// @Summary      Listar galpones
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/buildings [get]
func (h *CatalogHandler) ListBuildings(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	all, err := h.directory.ListBuildings(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(all), "buildings": all})
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name, tax_id opcional"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.directory.CreateSupplier(c.Context(), in.Name, in.TaxID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": s.ID, "name": s.Name})
}

// GetSupplier godoc
// @Summary      Obtener proveedor por ID
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *CatalogHandler) GetSupplier(c *fiber.Ctx) error {
	s, err := h.directory.GetSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"id": s.ID, "name": s.Name, "tax_id": s.TaxID})
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	all, err := h.directory.ListSuppliers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(all), "suppliers": all})
}
