package api

import (
	"errors"
	"net/http"
	"strconv"

	"admin-dashboard/internal/domain/order"
	reqdto "admin-dashboard/internal/handler/dto/request"
	resdto "admin-dashboard/internal/handler/dto/response"
	"admin-dashboard/internal/handler/httperr"
	"admin-dashboard/internal/usecase/commands"
	"admin-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary List orders
// @Description List orders, optionally filtered by a search term over reference and customer id
// @Tags orders
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {array} resdto.OrderResponse
// @Failure 503 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		abortStoreError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(items)})
}

// @Summary Recent orders
// @Description Latest orders by creation time
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 503 {object} map[string]string
// @Router /orders/recent [get]
func (h *OrderHandler) Recent(c *gin.Context) {
	items, err := h.q.Recent(c.Request.Context())
	if err != nil {
		abortStoreError(c, err, "Failed to list recent orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(items)})
}

// @Summary Update order
// @Description Update an order's amount and status
// @Tags orders
// @Accept json
// @Param id path int true "Order ID"
// @Param request body reqdto.UpdateOrderRequest true "Update order request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input := commands.UpdateOrderInput{
		Amount: req.Amount,
		Status: req.Status,
	}
	if err := h.cmds.Update(c.Request.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrNegativeAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order update", nil)
		default:
			abortStoreError(c, err, "Update order failed")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete order
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		abortStoreError(c, err, "Delete order failed")
		return
	}
	c.Status(http.StatusNoContent)
}
