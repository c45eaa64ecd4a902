package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/workdesk/workdesk/internal/metrics"
	"github.com/workdesk/workdesk/internal/modules/serializer"
	"github.com/workdesk/workdesk/internal/modules/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

// GetDashboard godoc
//
//	@Summary		Get dashboard
//	@Description	Aggregate headline counts, the task status histogram, six months of paid revenue and the ten most recent activities
//	@Tags			dashboard
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=service.DashboardSnapshot}
//	@Router			/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	start := time.Now()
	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	metrics.ObserveSnapshot(time.Since(start))
	c.JSON(http.StatusOK, serializer.Response{Data: snap})
}
