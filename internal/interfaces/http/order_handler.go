package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/application/procurement"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// OrderHandler pedidos de compra: listado, persistencia, edición de borradores y exportes.
type OrderHandler struct {
	editor *procurement.OrderEditor
	export *procurement.ExportUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(editor *procurement.OrderEditor, export *procurement.ExportUseCase) *OrderHandler {
	return &OrderHandler{editor: editor, export: export}
}

// ── Persistidos ─────────────────────────────────────────────────────────────

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        obra        query  string  false  "ID de la obra"
// @Param        fornecedor  query  string  false  "ID del proveedor"
// @Param        dataInicio  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.ListResponse[dto.OrderDTO]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var f dto.OrderFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.editor.List(c.UserContext(), GetSession(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener pedido (recalculado)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.editor.Load(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Guardar pedido nuevo
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderDTO  true  "Pedido"
// @Success      201   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.ID = ""
	out, err := h.editor.Save(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string        true  "ID del pedido"
// @Param        body  body  dto.OrderDTO  true  "Pedido"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.OrderDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.ID = c.Params("id")
	out, err := h.editor.Save(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         pedidos
// @Security     Bearer
// @Param        id   path  string  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.editor.Delete(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Copy godoc
// @Summary      Duplicar pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      201  {object}  dto.DraftResponse
// @Router       /api/pedidos/{id}/copy [post]
func (h *OrderHandler) Copy(c *fiber.Ctx) error {
	out, err := h.editor.Duplicate(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      PDF del pedido guardado
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}  file
// @Router       /api/pedidos/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	body, name, err := h.export.OrderPDF(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, name, body)
}

// ExportXLSX godoc
// @Summary      Exportar listado a Excel
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        obra        query  string  false  "ID de la obra"
// @Param        fornecedor  query  string  false  "ID del proveedor"
// @Param        dataInicio  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        dataFim     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}  file
// @Router       /api/pedidos/export.xlsx [get]
func (h *OrderHandler) ExportXLSX(c *fiber.Ctx) error {
	var f dto.OrderFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	body, err := h.export.OrdersSpreadsheet(c.UserContext(), GetSession(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimeXLSX, "pedidos.xlsx", body)
}

// ── Borradores ──────────────────────────────────────────────────────────────
// El borrador viaja completo en cada petición y vuelve recalculado.

// NewDraft godoc
// @Summary      Borrador vacío
// @Tags         borradores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/pedidos/draft [post]
func (h *OrderHandler) NewDraft(c *fiber.Ctx) error {
	return c.JSON(h.editor.NewDraft())
}

// Recalculate godoc
// @Summary      Recalcular borrador
// @Tags         borradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "Borrador"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/pedidos/draft/recalculate [post]
func (h *OrderHandler) Recalculate(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.Recalculate(in))
}

// AddLine godoc
// @Summary      Agregar línea vacía
// @Tags         borradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "Borrador"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/pedidos/draft/lines [post]
func (h *OrderHandler) AddLine(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.AddLine(in))
}

// RemoveLine godoc
// @Summary      Quitar línea
// @Tags         borradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        index  path  int               true  "Índice de la línea"
// @Param        body   body  dto.DraftRequest  true  "Borrador"
// @Success      200    {object}  dto.DraftResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/pedidos/draft/lines/{index} [delete]
func (h *OrderHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return invalidIndex(c)
	}
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.editor.RemoveLine(in, index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetLineField godoc
// @Summary      Editar campo de una línea
// @Description  Elegir una descripción del catálogo completa unidad y precio.
// @Tags         borradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        index  path  int                  true  "Índice de la línea"
// @Param        body   body  dto.LineEditRequest  true  "Borrador, campo y valor"
// @Success      200    {object}  dto.DraftResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/pedidos/draft/lines/{index} [patch]
func (h *OrderHandler) SetLineField(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return invalidIndex(c)
	}
	var in dto.LineEditRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.editor.SetLineField(c.UserContext(), GetSession(c), in, index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetShipping godoc
// @Summary      Cambiar frete
// @Tags         borradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShippingEditRequest  true  "Borrador y frete"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/pedidos/draft/shipping [put]
func (h *OrderHandler) SetShipping(c *fiber.Ctx) error {
	var in dto.ShippingEditRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.SetShipping(in))
}

// DraftPDF godoc
// @Summary      PDF del borrador sin guardar
// @Tags         borradores
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.DraftRequest  true  "Borrador"
// @Success      200   {file}  file
// @Router       /api/pedidos/draft/pdf [post]
func (h *OrderHandler) DraftPDF(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	body, name, err := h.export.DraftPDF(c.UserContext(), GetSession(c), in.Order)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, name, body)
}

func invalidIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice de línea inválido"})
}
