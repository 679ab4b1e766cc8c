package api

import (
	"net/http"

	resdto "admin-dashboard/internal/handler/dto/response"
	"admin-dashboard/internal/handler/httperr"
	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard snapshot
// @Description Current aggregate metrics: totals, online customers, pending orders, revenue and the trailing 7-day order series
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Failure 503 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.q.Snapshot(c.Request.Context())
	if err != nil {
		if infra.IsKind(err, infra.KindStoreUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Store unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build snapshot", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardSnapshot(snapshot))
}
