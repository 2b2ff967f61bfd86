package handler

import (
	"net/http"

	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	flowService      service.FlowService
	logger           *logrus.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, flowService service.FlowService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, flowService: flowService, logger: logger}
}

func (h *DashboardHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	scoped.GET("/summary", h.GetSummary)
	scoped.GET("/flows", h.GetFlows)
}

// @Summary      Get waqf summary
// @Description  Corpus, profit and payout totals, active counts, this month's flows and the payment status of the last period profit
// @Tags         dashboard
// @Produce      json
// @Param        govId  path      int  true  "Waqf gov id"
// @Success      200    {object}  response.Response{data=service.DashboardResponse}
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /api/waqfs/{govId}/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context(), govIDFrom(c))
	if err != nil {
		writeError(c, h.logger, "DashboardHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// @Summary      Get profit and payout flows
// @Description  Profit inflow against completed and pending payout outflow, bucketed by period
// @Tags         dashboard
// @Produce      json
// @Param        govId     path      int     true   "Waqf gov id"
// @Param        group_by  query     string  false  "week, month, quarter or year (default month)"
// @Param        from      query     string  false  "Start date (YYYY-MM-DD, default one year before to)"
// @Param        to        query     string  false  "End date (YYYY-MM-DD, default today)"
// @Success      200       {object}  response.Response{data=[]service.FlowDataPoint}
// @Failure      400       {object}  response.Response
// @Security     BearerAuth
// @Router       /api/waqfs/{govId}/flows [get]
func (h *DashboardHandler) GetFlows(c *gin.Context) {
	filter := service.FlowFilter{GroupBy: c.Query("group_by")}
	if v := c.Query("from"); v != "" {
		filter.From = &v
	}
	if v := c.Query("to"); v != "" {
		filter.To = &v
	}

	flows, err := h.flowService.GetFlows(c.Request.Context(), govIDFrom(c), filter)
	if err != nil {
		writeError(c, h.logger, "DashboardHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, flows))
}
