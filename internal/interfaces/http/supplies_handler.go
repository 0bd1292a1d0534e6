package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/serviza/dotaciones-api/internal/application/dto"
	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
)

// SuppliesHandler maneja las peticiones HTTP del ledger de dotación (protegido).
type SuppliesHandler struct {
	register *supplies.RegisterMovementUseCase
	delete   *supplies.DeleteMovementUseCase
	views    *supplies.ViewsUseCase
	receipt  *supplies.ReceiptUseCase
}

// NewSuppliesHandler construye el handler.
func NewSuppliesHandler(
	register *supplies.RegisterMovementUseCase,
	delete_ *supplies.DeleteMovementUseCase,
	views *supplies.ViewsUseCase,
	receipt *supplies.ReceiptUseCase,
) *SuppliesHandler {
	return &SuppliesHandler{register: register, delete: delete_, views: views, receipt: receipt}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de dotación
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, kind, quantity, occurred_on, employee_id o post_id (DELIVERY/RETURN), note, unit_cost (compras)"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/supplies/movements [post]
func (h *SuppliesHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input, err := movementInputFromRequest(c, in)
	if err != nil {
		return respondError(c, err)
	}

	id, err := h.register.RegisterMovement(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{
		ID:      id,
		Message: "movimiento registrado",
	})
}

// DeleteMovement godoc
// @Summary      Eliminar un movimiento del ledger
// @Description  Rechazado si la historia restante del producto dejaría saldos negativos.
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/supplies/movements/{id} [delete]
func (h *SuppliesHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.delete.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// DeliveryReceipt godoc
// @Summary      Acta de entrega en PDF
// @Tags         supplies
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del movimiento DELIVERY"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/movements/{id}/receipt [get]
func (h *SuppliesHandler) DeliveryReceipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.DeliveryReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="acta-entrega.pdf"`)
	return c.Send(pdfBytes)
}

// Stock godoc
// @Summary      Tabla de existencias por producto
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockRowDTO
// @Router       /api/supplies/stock [get]
func (h *SuppliesHandler) Stock(c *fiber.Ctx) error {
	rows, err := h.views.StockByProduct(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "stock": rows})
}

// StockByPost godoc
// @Summary      Resumen de dotación por puesto (solo saldos > 0)
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PostStockDTO
// @Router       /api/supplies/posts [get]
func (h *SuppliesHandler) StockByPost(c *fiber.Ctx) error {
	rows, err := h.views.StockByPost(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "posts": rows})
}

// PostHistory godoc
// @Summary      Histórico de movimientos de un puesto
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del puesto"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.HolderMovementDTO
// @Router       /api/supplies/posts/{id}/movements [get]
func (h *SuppliesHandler) PostHistory(c *fiber.Ctx) error {
	return h.holderHistory(c, entity.PostHolder(c.Params("id")))
}

// EmployeeHistory godoc
// @Summary      Histórico de dotación de un empleado
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del empleado"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.HolderMovementDTO
// @Router       /api/supplies/employees/{id}/movements [get]
func (h *SuppliesHandler) EmployeeHistory(c *fiber.Ctx) error {
	return h.holderHistory(c, entity.EmployeeHolder(c.Params("id")))
}

func (h *SuppliesHandler) holderHistory(c *fiber.Ctx, holder entity.Holder) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	rows, err := h.views.HolderHistory(c.Context(), holder, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "movements": rows})
}

// PurchaseDisposalLog godoc
// @Summary      Log de compras y bajas
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "PURCHASE o DISPOSAL"
// @Param        from    query  string  false  "Fecha inicial (2006-01-02)"
// @Param        to      query  string  false  "Fecha final (2006-01-02)"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.PurchaseLogDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/supplies/log [get]
func (h *SuppliesHandler) PurchaseDisposalLog(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}

	var kind *entity.MovementKind
	if s := c.Query("kind"); s != "" {
		k := entity.MovementKind(s)
		kind = &k
	}
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida: from"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida: to"})
	}

	rows, err := h.views.PurchaseDisposalLog(c.Context(), kind, from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "movements": rows})
}

// ProductBalance godoc
// @Summary      Saldo puntual de bodega o de un destinatario
// @Description  Sin parámetros devuelve el saldo de bodega; con employee_id o post_id, el saldo del destinatario.
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id           path   string  true   "ID del producto"
// @Param        employee_id  query  string  false  "Saldo en manos del empleado"
// @Param        post_id      query  string  false  "Saldo en manos del puesto"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/supplies/products/{id}/balance [get]
func (h *SuppliesHandler) ProductBalance(c *fiber.Ctx) error {
	productID := c.Params("id")
	holder, err := holderFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	if holder.IsZero() {
		balance, err := h.views.WarehouseBalance(productID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.BalanceResponse{ProductID: productID, Balance: balance})
	}

	balance, err := h.views.HolderBalance(productID, holder)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{
		ProductID: productID,
		Holder:    string(holder.Kind) + ":" + holder.ID,
		Balance:   balance,
	})
}

// movementInputFromRequest adapta el request HTTP a la entrada del caso de uso.
func movementInputFromRequest(c *fiber.Ctx, in dto.RegisterMovementRequest) (supplies.MovementInput, error) {
	holder, err := holderFromRequest(in.EmployeeID, in.PostID)
	if err != nil {
		return supplies.MovementInput{}, err
	}

	var occurredOn time.Time
	if in.OccurredOn != "" {
		occurredOn, err = time.Parse("2006-01-02", in.OccurredOn)
		if err != nil {
			return supplies.MovementInput{}, fmt.Errorf("%w: occurred_on", domain.ErrInvalidInput)
		}
	}

	return supplies.MovementInput{
		ProductID:           in.ProductID,
		Kind:                entity.MovementKind(in.Kind),
		Quantity:            in.Quantity,
		OccurredOn:          occurredOn,
		Holder:              holder,
		Note:                in.Note,
		UnitCost:            in.UnitCost,
		AllowInactiveHolder: in.AllowInactiveHolder,
		UserID:              GetUserID(c),
	}, nil
}

// holderFromRequest construye la unión discriminada desde los dos campos del
// wire format. Ambos a la vez es un request malformado.
func holderFromRequest(employeeID, postID string) (entity.Holder, error) {
	switch {
	case employeeID != "" && postID != "":
		return entity.Holder{}, fmt.Errorf("%w: employee_id y post_id son excluyentes", domain.ErrInvalidInput)
	case employeeID != "":
		return entity.EmployeeHolder(employeeID), nil
	case postID != "":
		return entity.PostHolder(postID), nil
	}
	return entity.Holder{}, nil
}

func holderFromQuery(c *fiber.Ctx) (entity.Holder, error) {
	return holderFromRequest(c.Query("employee_id"), c.Query("post_id"))
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
