package handler

import (
	"net/http"
	"strconv"

	"awqaf/internal/service"
	"awqaf/pkg/pagination"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PayoutHandler struct {
	payoutService service.PayoutService
	logger        *logrus.Logger
}

func NewPayoutHandler(payoutService service.PayoutService, logger *logrus.Logger) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService, logger: logger}
}

func (h *PayoutHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	group := scoped.Group("/payouts")
	{
		group.GET("", h.ListPayouts)
		group.POST("", h.CreatePayout)
		group.GET("/:id", h.GetPayout)
		group.PATCH("/:id", h.UpdatePayout)
		group.DELETE("/:id", h.CancelPayout)
	}
	scoped.GET("/reconciliation", h.ReconcileYear)
}

// ListPayouts godoc
// @Summary      List payouts
// @Tags         payouts
// @Security     BearerAuth
// @Produce      json
// @Param        govId   path      int     true   "Waqf gov id"
// @Param        status  query     string  false  "pending, completed, failed or cancelled"
// @Param        from    query     string  false  "Earliest payout date (YYYY-MM-DD)"
// @Param        to      query     string  false  "Latest payout date (YYYY-MM-DD)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=[]service.PayoutResponse}
// @Failure      400     {object}  response.Response
// @Router       /api/waqfs/{govId}/payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	p := pagination.Parse(c)

	q := service.PayoutListQuery{Status: c.Query("status")}
	if v := c.Query("from"); v != "" {
		q.From = &v
	}
	if v := c.Query("to"); v != "" {
		q.To = &v
	}

	payouts, total, err := h.payoutService.ListPayouts(c.Request.Context(), govIDFrom(c), q, p.Page, p.Limit)
	if err != nil {
		writeError(c, h.logger, "PayoutHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, payouts, total, p.Page, p.Limit))
}

// GetPayout godoc
// @Summary      Get a payout
// @Tags         payouts
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Payout ID"
// @Success      200    {object}  response.Response{data=service.PayoutResponse}
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/payouts/{id} [get]
func (h *PayoutHandler) GetPayout(c *gin.Context) {
	payout, err := h.payoutService.GetPayout(c.Request.Context(), govIDFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "PayoutHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, payout))
}

// CreatePayout godoc
// @Summary      Record a payout
// @Description  Bank details default to the beneficiary's when omitted
// @Tags         payouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                          true  "Waqf gov id"
// @Param        payload  body      service.CreatePayoutRequest  true  "Payout Payload"
// @Success      201      {object}  response.Response{data=service.PayoutResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/waqfs/{govId}/payouts [post]
func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	var req service.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payout, err := h.payoutService.CreatePayout(c.Request.Context(), userIDFrom(c), govIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "PayoutHandler", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, payout))
}

// UpdatePayout godoc
// @Summary      Patch a payout
// @Description  Status changes follow pending to completed, failed or cancelled, and failed to pending or cancelled
// @Tags         payouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                          true  "Waqf gov id"
// @Param        id       path      string                       true  "Payout ID"
// @Param        payload  body      service.UpdatePayoutRequest  true  "Patch"
// @Success      200      {object}  response.Response{data=service.PayoutResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/waqfs/{govId}/payouts/{id} [patch]
func (h *PayoutHandler) UpdatePayout(c *gin.Context) {
	var req service.UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payout, err := h.payoutService.UpdatePayout(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, "PayoutHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, payout))
}

// CancelPayout godoc
// @Summary      Cancel a payout
// @Tags         payouts
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Payout ID"
// @Success      200    {object}  response.Response{data=service.PayoutResponse}
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /api/waqfs/{govId}/payouts/{id} [delete]
func (h *PayoutHandler) CancelPayout(c *gin.Context) {
	payout, err := h.payoutService.CancelPayout(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "PayoutHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, payout))
}

// ReconcileYear godoc
// @Summary      Reconcile a year
// @Description  Compares the year's profits against its payouts
// @Tags         payouts
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int  true   "Waqf gov id"
// @Param        year   query     int  false  "Calendar year (default current)"
// @Success      200    {object}  response.Response{data=service.ReconciliationResponse}
// @Failure      400    {object}  response.Response
// @Router       /api/waqfs/{govId}/reconciliation [get]
func (h *PayoutHandler) ReconcileYear(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y <= 0 {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "year must be a positive integer"))
			return
		}
		year = y
	}

	res, err := h.payoutService.ReconcileYear(c.Request.Context(), govIDFrom(c), year)
	if err != nil {
		writeError(c, h.logger, "PayoutHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
