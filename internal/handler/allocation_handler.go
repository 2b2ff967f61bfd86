package handler

import (
	"bytes"
	"net/http"

	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AllocationHandler struct {
	allocationService service.AllocationService
	exportService     service.ExportService
	logger            *logrus.Logger
}

func NewAllocationHandler(allocationService service.AllocationService, exportService service.ExportService, logger *logrus.Logger) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService, exportService: exportService, logger: logger}
}

func (h *AllocationHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	scoped.POST("/profit-preview", h.Preview)
	scoped.GET("/profit-preview/export", h.ExportPreview)
	scoped.POST("/payouts/from-allocation", h.GeneratePayouts)
}

// Preview godoc
// @Summary      Preview a profit allocation
// @Description  Evaluates the active distribution rules against a profit amount without persisting anything
// @Tags         allocation
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                     true  "Waqf gov id"
// @Param        payload  body      service.PreviewRequest  true  "Profit amount or profit id"
// @Success      200      {object}  response.Response{data=service.PreviewResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/waqfs/{govId}/profit-preview [post]
func (h *AllocationHandler) Preview(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	preview, err := h.allocationService.Preview(c.Request.Context(), govIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "AllocationHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, preview))
}

// ExportPreview godoc
// @Summary      Export a profit allocation
// @Description  Same evaluation as the preview, rendered as an Excel workbook
// @Tags         allocation
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        govId          path      int     true   "Waqf gov id"
// @Param        profit_amount  query     string  false  "Profit amount"
// @Param        profit_id      query     string  false  "Profit record ID"
// @Param        date           query     string  false  "Evaluation date (YYYY-MM-DD)"
// @Success      200
// @Failure      400            {object}  response.Response
// @Router       /api/waqfs/{govId}/profit-preview/export [get]
func (h *AllocationHandler) ExportPreview(c *gin.Context) {
	var req service.PreviewRequest
	if v, ok := c.GetQuery("profit_amount"); ok {
		req.ProfitAmount = service.AmountPtr(v)
	}
	if v, ok := c.GetQuery("profit_id"); ok {
		req.ProfitID = &v
	}
	if v, ok := c.GetQuery("date"); ok {
		req.Date = &v
	}

	var buf bytes.Buffer
	filename, err := h.exportService.ExportPreview(c.Request.Context(), govIDFrom(c), req, &buf)
	if err != nil {
		writeError(c, h.logger, "AllocationHandler", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GeneratePayouts godoc
// @Summary      Create payouts from an allocation
// @Description  Evaluates the rules and records one pending payout per non-zero allocation
// @Tags         allocation
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                             true  "Waqf gov id"
// @Param        payload  body      service.GeneratePayoutsRequest  true  "Allocation and payout details"
// @Success      201      {object}  response.Response{data=service.GeneratePayoutsResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/waqfs/{govId}/payouts/from-allocation [post]
func (h *AllocationHandler) GeneratePayouts(c *gin.Context) {
	var req service.GeneratePayoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.allocationService.GeneratePayouts(c.Request.Context(), userIDFrom(c), govIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "AllocationHandler", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}
