package handler

import (
	"net/http"

	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BeneficiaryHandler struct {
	beneficiaryService service.BeneficiaryService
	logger             *logrus.Logger
}

func NewBeneficiaryHandler(beneficiaryService service.BeneficiaryService, logger *logrus.Logger) *BeneficiaryHandler {
	return &BeneficiaryHandler{beneficiaryService: beneficiaryService, logger: logger}
}

func (h *BeneficiaryHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	group := scoped.Group("/beneficiaries")
	{
		group.GET("", h.ListBeneficiaries)
		group.POST("", h.CreateBeneficiary)
		group.GET("/:id", h.GetBeneficiary)
		group.PATCH("/:id", h.UpdateBeneficiary)
		group.DELETE("/:id", h.DeactivateBeneficiary)
	}
}

// ListBeneficiaries godoc
// @Summary      List beneficiaries
// @Description  Active beneficiaries by default; include_inactive=true lists all
// @Tags         beneficiaries
// @Security     BearerAuth
// @Produce      json
// @Param        govId             path      int   true   "Waqf gov id"
// @Param        include_inactive  query     bool  false  "Include deactivated beneficiaries"
// @Success      200               {object}  response.Response{data=[]service.BeneficiaryResponse}
// @Router       /api/waqfs/{govId}/beneficiaries [get]
func (h *BeneficiaryHandler) ListBeneficiaries(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	list, err := h.beneficiaryService.ListBeneficiaries(c.Request.Context(), govIDFrom(c), includeInactive)
	if err != nil {
		writeError(c, h.logger, "BeneficiaryHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// GetBeneficiary godoc
// @Summary      Get a beneficiary
// @Tags         beneficiaries
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Beneficiary ID"
// @Success      200    {object}  response.Response{data=service.BeneficiaryResponse}
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/beneficiaries/{id} [get]
func (h *BeneficiaryHandler) GetBeneficiary(c *gin.Context) {
	b, err := h.beneficiaryService.GetBeneficiary(c.Request.Context(), govIDFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "BeneficiaryHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, b))
}

// CreateBeneficiary godoc
// @Summary      Add a beneficiary
// @Tags         beneficiaries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                               true  "Waqf gov id"
// @Param        payload  body      service.CreateBeneficiaryRequest  true  "Beneficiary Payload"
// @Success      201      {object}  response.Response{data=service.BeneficiaryResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/waqfs/{govId}/beneficiaries [post]
func (h *BeneficiaryHandler) CreateBeneficiary(c *gin.Context) {
	var req service.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.beneficiaryService.CreateBeneficiary(c.Request.Context(), userIDFrom(c), govIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "BeneficiaryHandler", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, b))
}

// UpdateBeneficiary godoc
// @Summary      Patch a beneficiary
// @Tags         beneficiaries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId    path      int                               true  "Waqf gov id"
// @Param        id       path      string                            true  "Beneficiary ID"
// @Param        payload  body      service.UpdateBeneficiaryRequest  true  "Patch"
// @Success      200      {object}  response.Response{data=service.BeneficiaryResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/waqfs/{govId}/beneficiaries/{id} [patch]
func (h *BeneficiaryHandler) UpdateBeneficiary(c *gin.Context) {
	var req service.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.beneficiaryService.UpdateBeneficiary(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, "BeneficiaryHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, b))
}

// DeactivateBeneficiary godoc
// @Summary      Deactivate a beneficiary
// @Description  Beneficiaries are never removed; history keeps referencing them
// @Tags         beneficiaries
// @Security     BearerAuth
// @Produce      json
// @Param        govId  path      int     true  "Waqf gov id"
// @Param        id     path      string  true  "Beneficiary ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /api/waqfs/{govId}/beneficiaries/{id} [delete]
func (h *BeneficiaryHandler) DeactivateBeneficiary(c *gin.Context) {
	if err := h.beneficiaryService.DeactivateBeneficiary(c.Request.Context(), userIDFrom(c), govIDFrom(c), c.Param("id")); err != nil {
		writeError(c, h.logger, "BeneficiaryHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Beneficiary deactivated"))
}
