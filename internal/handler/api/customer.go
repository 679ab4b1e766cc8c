package api

import (
	"errors"
	"net/http"

	reqdto "admin-dashboard/internal/handler/dto/request"
	resdto "admin-dashboard/internal/handler/dto/response"
	"admin-dashboard/internal/handler/httperr"
	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/usecase/commands"
	"admin-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary List customers
// @Description List customers, optionally filtered by a search term over chat id, name and phone
// @Tags customers
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {array} resdto.CustomerResponse
// @Failure 503 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		abortStoreError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": resdto.FromCustomerList(items)})
}

// @Summary Recent customers
// @Description Latest customers by activity
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Failure 503 {object} map[string]string
// @Router /customers/recent [get]
func (h *CustomerHandler) Recent(c *gin.Context) {
	items, err := h.q.Recent(c.Request.Context())
	if err != nil {
		abortStoreError(c, err, "Failed to list recent customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": resdto.FromCustomerList(items)})
}

// @Summary Update customer
// @Description Update a customer's name, phone and language
// @Tags customers
// @Accept json
// @Param id path string true "Customer chat ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update customer request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	chatID := c.Param("id")
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input := commands.UpdateCustomerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Language: req.Language,
	}
	if err := h.cmds.Update(c.Request.Context(), chatID, input); err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		abortStoreError(c, err, "Update customer failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete customer
// @Tags customers
// @Param id path string true "Customer chat ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	chatID := c.Param("id")
	if err := h.cmds.Delete(c.Request.Context(), chatID); err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		abortStoreError(c, err, "Delete customer failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func abortStoreError(c *gin.Context, err error, msg string) {
	if infra.IsKind(err, infra.KindStoreUnavailable) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Store unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}
