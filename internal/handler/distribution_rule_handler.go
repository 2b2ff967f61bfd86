package handler

import (
	"net/http"

	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DistributionRuleHandler struct {
	ruleService service.DistributionRuleService
	logger      *logrus.Logger
}

func NewDistributionRuleHandler(ruleService service.DistributionRuleService, logger *logrus.Logger) *DistributionRuleHandler {
	return &DistributionRuleHandler{ruleService: ruleService, logger: logger}
}

func (h *DistributionRuleHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	group := scoped.Group("/distribution-rules")
	{
		group.GET("", h.ListRules)
		group.POST("", h.CreateRule)
		group.GET("/:id", h.GetRule)
		group.PATCH("/:id", h.UpdateRule)
		group.DELETE("/:id", h.DeleteRule)
	}
}

// ListRules godoc
// @Summary      List distribution rules
// @Tags         distribution-rules
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int  true  "Waqf gov id"
// @Success      200    {object}  response.Response{data=[]service.RuleResponse}
// @Router       /api/waqfs/{govId}/distribution-rules [get]
func (h *DistributionRuleHandler) ListRules(c *gin.Context) {
	rules, err := h.ruleService.ListRules(c.Request.Context(), govIDFrom(c))
	if err != nil {
		writeError(c, h.logger, "DistributionRuleHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rules))
}

// GetRule godoc
// @Summary      Get a distribution rule
// @Tags         distribution-rules
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Rule ID"
// @Success      200    {object}  response.Response{data=service.RuleResponse}
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/distribution-rules/{id} [get]
func (h *DistributionRuleHandler) GetRule(c *gin.Context) {
	rule, err := h.ruleService.GetRule(c.Request.Context(), govIDFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "DistributionRuleHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// CreateRule godoc
// @Summary      Create a distribution rule
// @Description  Rejects shares that would push active percent rules past 100
// @Tags         distribution-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                        true  "Waqf gov id"
// @Param        payload  body      service.CreateRuleRequest  true  "Rule Payload"
// @Success      201      {object}  response.Response{data=service.RuleResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/waqfs/{govId}/distribution-rules [post]
func (h *DistributionRuleHandler) CreateRule(c *gin.Context) {
	var req service.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), userIDFrom(c), govIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "DistributionRuleHandler", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rule))
}

// UpdateRule godoc
// @Summary      Patch a distribution rule
// @Tags         distribution-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                        true  "Waqf gov id"
// @Param        id       path      string                     true  "Rule ID"
// @Param        payload  body      service.UpdateRuleRequest  true  "Patch"
// @Success      200      {object}  response.Response{data=service.RuleResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/waqfs/{govId}/distribution-rules/{id} [patch]
func (h *DistributionRuleHandler) UpdateRule(c *gin.Context) {
	var req service.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, "DistributionRuleHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// DeleteRule godoc
// @Summary      Delete a distribution rule
// @Tags         distribution-rules
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Rule ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/distribution-rules/{id} [delete]
func (h *DistributionRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.ruleService.DeleteRule(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id")); err != nil {
		writeError(c, h.logger, "DistributionRuleHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Distribution rule deleted"))
}
