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

type AuditHandler struct {
	auditService service.AuditService
	logger       *logrus.Logger
}

func NewAuditHandler(auditService service.AuditService, logger *logrus.Logger) *AuditHandler {
	return &AuditHandler{auditService: auditService, logger: logger}
}

// RegisterRoutes binds the audit trail on an authenticated group
func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", h.GetAuditLogs)
}

// GetAuditLogs returns the audit trail of the caller's waqfs
// @Summary      Get audit logs
// @Description  Lists audit entries of every waqf the caller is authorized for, newest first
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        waqf_gov_id  query     int  false  "Restrict to one waqf"
// @Param        page         query     int  false  "Page number (default 1)"
// @Param        limit        query     int  false  "Number of items per page (default 20)"
// @Success      200          {object}  response.Response{data=[]service.AuditLogResponse}
// @Failure      403          {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	var govID *int64
	if raw := c.Query("waqf_gov_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid waqf gov id"))
			return
		}
		govID = &id
	}

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), nationalIDFrom(c), govID, p.Page, p.Limit)
	if err != nil {
		writeError(c, h.logger, "AuditHandler", err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, logs, total, p.Page, p.Limit))
}
