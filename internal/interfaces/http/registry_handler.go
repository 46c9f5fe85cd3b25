package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/melo-compras/internal/application/dto"
	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/application/usecase"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
)

// crudUseCase forma común de los casos de uso de cadastros.
type crudUseCase[D any] interface {
	GetByID(ctx context.Context, sess entity.Session, id string) (*D, error)
	Create(ctx context.Context, sess entity.Session, in D) (*D, error)
	Update(ctx context.Context, sess entity.Session, id string, in D) (*D, error)
	Delete(ctx context.Context, sess entity.Session, id string) error
}

// ResourceHandler CRUD HTTP para proveedores, ítems, obras, engenheiros y solicitudes.
type ResourceHandler[D any] struct {
	uc   crudUseCase[D]
	list func(c *fiber.Ctx) (dto.ListResponse[D], error)
}

// NewSupplierHandler /api/fornecedores.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *ResourceHandler[dto.SupplierDTO] {
	return &ResourceHandler[dto.SupplierDTO]{uc: uc, list: func(c *fiber.Ctx) (dto.ListResponse[dto.SupplierDTO], error) {
		return uc.List(c.UserContext(), GetSession(c))
	}}
}

// NewCatalogHandler /api/items. Acepta ?q= para filtrar por descripción.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *ResourceHandler[dto.CatalogItemDTO] {
	return &ResourceHandler[dto.CatalogItemDTO]{uc: uc, list: func(c *fiber.Ctx) (dto.ListResponse[dto.CatalogItemDTO], error) {
		return uc.List(c.UserContext(), GetSession(c), c.Query("q"))
	}}
}

// NewSiteHandler /api/obras.
func NewSiteHandler(uc *usecase.SiteUseCase) *ResourceHandler[dto.SiteDTO] {
	return &ResourceHandler[dto.SiteDTO]{uc: uc, list: func(c *fiber.Ctx) (dto.ListResponse[dto.SiteDTO], error) {
		return uc.List(c.UserContext(), GetSession(c))
	}}
}

// NewEngineerHandler /api/engenheiros.
func NewEngineerHandler(uc *usecase.EngineerUseCase) *ResourceHandler[dto.EngineerDTO] {
	return &ResourceHandler[dto.EngineerDTO]{uc: uc, list: func(c *fiber.Ctx) (dto.ListResponse[dto.EngineerDTO], error) {
		return uc.List(c.UserContext(), GetSession(c))
	}}
}

// List godoc
// @Summary      Listar registros del recurso
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/{recurso} [get]
func (h *ResourceHandler[D]) List(c *fiber.Ctx) error {
	out, err := h.list(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener registro por ID
// @Tags         cadastros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{recurso}/{id} [get]
func (h *ResourceHandler[D]) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/{recurso} [post]
func (h *ResourceHandler[D]) Create(c *fiber.Ctx) error {
	var in D
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar registro
// @Tags         cadastros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{recurso}/{id} [put]
func (h *ResourceHandler[D]) Update(c *fiber.Ctx) error {
	var in D
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         cadastros
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/{recurso}/{id} [delete]
func (h *ResourceHandler[D]) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Solicitudes ─────────────────────────────────────────────────────────────

// RequestHandler solicitudes de compra y su conversión en pedido.
type RequestHandler struct {
	*ResourceHandler[dto.PurchaseRequestDTO]
	conv *procurement.RequestConversion
}

// NewRequestHandler /api/solicitacoes.
func NewRequestHandler(uc *usecase.RequestUseCase, conv *procurement.RequestConversion) *RequestHandler {
	return &RequestHandler{
		ResourceHandler: &ResourceHandler[dto.PurchaseRequestDTO]{uc: uc, list: func(c *fiber.Ctx) (dto.ListResponse[dto.PurchaseRequestDTO], error) {
			return uc.List(c.UserContext(), GetSession(c))
		}},
		conv: conv,
	}
}

type toOrderRequest struct {
	SupplierID string `json:"supplier_id"`
}

// ToOrder godoc
// @Summary      Generar pedido desde una solicitud
// @Description  Arma el pedido con los ítems de la solicitud y precios del catálogo y lo guarda.
// @Tags         solicitacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string          true   "ID de la solicitud"
// @Param        body  body  toOrderRequest  false  "Proveedor (opcional)"
// @Success      201   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitacoes/{id}/pedido [post]
func (h *RequestHandler) ToOrder(c *fiber.Ctx) error {
	var in toOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.conv.ToOrder(c.UserContext(), GetSession(c), c.Params("id"), in.SupplierID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ── Usuarios ────────────────────────────────────────────────────────────────

// UserHandler administración de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRequest  true  "Usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID"
// @Param        body  body  dto.UserRequest  true  "Usuario (password opcional)"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
