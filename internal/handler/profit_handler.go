package handler

import (
	"net/http"

	"awqaf/internal/service"
	"awqaf/pkg/pagination"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProfitHandler struct {
	profitService service.ProfitService
	payoutService service.PayoutService
	logger        *logrus.Logger
}

func NewProfitHandler(profitService service.ProfitService, payoutService service.PayoutService, logger *logrus.Logger) *ProfitHandler {
	return &ProfitHandler{profitService: profitService, payoutService: payoutService, logger: logger}
}

func (h *ProfitHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	group := scoped.Group("/profits")
	{
		group.GET("", h.ListProfits)
		group.POST("", h.CreateProfit)
		group.GET("/:id", h.GetProfit)
		group.PATCH("/:id", h.UpdateProfit)
		group.GET("/:id/reconciliation", h.ReconcileProfit)
	}
}

// ListProfits godoc
// @Summary      List profit history
// @Description  Newest period first
// @Tags         profits
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int  true   "Waqf gov id"
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=[]service.ProfitResponse}
// @Router       /api/waqfs/{govId}/profits [get]
func (h *ProfitHandler) ListProfits(c *gin.Context) {
	p := pagination.Parse(c)

	profits, total, err := h.profitService.ListProfits(c.Request.Context(), govIDFrom(c), p.Page, p.Limit)
	if err != nil {
		writeError(c, h.logger, "ProfitHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, profits, total, p.Page, p.Limit))
}

// GetProfit godoc
// @Summary      Get a profit record
// @Tags         profits
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Profit ID"
// @Success      200    {object}  response.Response{data=service.ProfitResponse}
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/profits/{id} [get]
func (h *ProfitHandler) GetProfit(c *gin.Context) {
	profit, err := h.profitService.GetProfit(c.Request.Context(), govIDFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "ProfitHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, profit))
}

// CreateProfit godoc
// @Summary      Record a profit
// @Tags         profits
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                          true  "Waqf gov id"
// @Param        payload  body      service.CreateProfitRequest  true  "Profit Payload"
// @Success      201      {object}  response.Response{data=service.ProfitResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/waqfs/{govId}/profits [post]
func (h *ProfitHandler) CreateProfit(c *gin.Context) {
	var req service.CreateProfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profit, err := h.profitService.CreateProfit(c.Request.Context(), userIDFrom(c), govIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "ProfitHandler", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, profit))
}

// UpdateProfit godoc
// @Summary      Patch a profit record
// @Tags         profits
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                          true  "Waqf gov id"
// @Param        id       path      string                       true  "Profit ID"
// @Param        payload  body      service.UpdateProfitRequest  true  "Patch"
// @Success      200      {object}  response.Response{data=service.ProfitResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/waqfs/{govId}/profits/{id} [patch]
func (h *ProfitHandler) UpdateProfit(c *gin.Context) {
	var req service.UpdateProfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profit, err := h.profitService.UpdateProfit(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, "ProfitHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, profit))
}

// ReconcileProfit godoc
// @Summary      Reconcile one profit
// @Description  Compares a profit record against the payouts linked to it
// @Tags         profits
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Profit ID"
// @Success      200    {object}  response.Response{data=service.ReconciliationResponse}
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/profits/{id}/reconciliation [get]
func (h *ProfitHandler) ReconcileProfit(c *gin.Context) {
	res, err := h.payoutService.ReconcileProfit(c.Request.Context(), govIDFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "ProfitHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
