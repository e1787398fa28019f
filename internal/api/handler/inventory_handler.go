package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sitewise/mis-backend/internal/core/ports"
)

// InventoryHandler handles inventory CRUD. Reads are open to every role;
// writes are admin-only at the route level.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type createItemRequest struct {
	ItemName string `json:"itemName" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
	Unit     string `json:"unit"     validate:"required"`
	Category string `json:"category"`
	Location string `json:"location"`
}

type updateItemRequest struct {
	ItemName *string `json:"itemName" validate:"omitempty,min=1"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=0"`
	Unit     *string `json:"unit"     validate:"omitempty,min=1"`
	Category *string `json:"category"`
	Location *string `json:"location"`
}

// List handles GET /inventory.
//
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.InventoryItem
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /inventory/:id.
//
// @Summary      Get an inventory item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.InventoryItem
// @Failure      404  {object}  errorResponse
// @Router       /inventory/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /inventory.
//
// @Summary      Create an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.InventoryItem
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateItemInput{
		ItemName: req.ItemName,
		Quantity: *req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /inventory/:id. Absent fields are left unchanged.
//
// @Summary      Update an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Item id"
// @Param        body  body      updateItemRequest  true  "Fields to update"
// @Success      200   {object}  domain.InventoryItem
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.UpdateItem(c.Request().Context(), c.Param("id"), ports.UpdateItemInput{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /inventory/:id.
//
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "inventory item removed"})
}
