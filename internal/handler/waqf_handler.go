package handler

import (
	"net/http"

	"awqaf/internal/service"
	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WaqfHandler struct {
	waqfService service.WaqfService
	logger      *logrus.Logger
}

func NewWaqfHandler(waqfService service.WaqfService, logger *logrus.Logger) *WaqfHandler {
	return &WaqfHandler{waqfService: waqfService, logger: logger}
}

// RegisterRoutes binds the collection routes on waqfs and the per-record routes on scoped (/:govId)
func (h *WaqfHandler) RegisterRoutes(waqfs, scoped *gin.RouterGroup) {
	waqfs.GET("", h.ListWaqfs)
	waqfs.POST("", h.CreateWaqf)

	assets := scoped.Group("/assets")
	{
		assets.GET("/:assetKind", h.GetWaqf)
		assets.GET("/:assetKind/:assetLabel", h.GetWaqf)
		assets.PATCH("/:assetKind", h.UpdateWaqf)
		assets.PATCH("/:assetKind/:assetLabel", h.UpdateWaqf)
		assets.DELETE("/:assetKind", h.DeleteWaqf)
		assets.DELETE("/:assetKind/:assetLabel", h.DeleteWaqf)
	}
}

func waqfKeyFrom(c *gin.Context) service.WaqfKey {
	key := service.WaqfKey{GovID: govIDFrom(c), AssetKind: c.Param("assetKind")}
	if label := c.Param("assetLabel"); label != "" {
		key.AssetLabel = &label
	}
	return key
}

// ListWaqfs godoc
// @Summary      List my waqfs
// @Description  Lists every waqf record the caller is an authorized user of
// @Tags         waqfs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.WaqfResponse}
// @Router       /api/waqfs [get]
func (h *WaqfHandler) ListWaqfs(c *gin.Context) {
	waqfs, err := h.waqfService.ListWaqfs(c.Request.Context(), nationalIDFrom(c))
	if err != nil {
		writeError(c, h.logger, "WaqfHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, waqfs))
}

// CreateWaqf godoc
// @Summary      Create a waqf record
// @Description  Registers a waqf asset record; the caller becomes its founder
// @Tags         waqfs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateWaqfRequest  true  "Waqf Payload"
// @Success      201      {object}  response.Response{data=service.WaqfResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/waqfs [post]
func (h *WaqfHandler) CreateWaqf(c *gin.Context) {
	var req service.CreateWaqfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	waqf, err := h.waqfService.CreateWaqf(c.Request.Context(), userIDFrom(c), nationalIDFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "WaqfHandler", err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, waqf))
}

// GetWaqf godoc
// @Summary      Get a waqf record
// @Tags         waqfs
// @Security     BearerAuth
// @Produce      json
// @Param        govId       path      int     true   "Waqf gov id"
// @Param        assetKind   path      string  true   "Asset kind"
// @Param        assetLabel  path      string  false  "Asset label"
// @Success      200         {object}  response.Response{data=service.WaqfResponse}
// @Failure      404         {object}  response.Response
// @Router       /api/waqfs/{govId}/assets/{assetKind}/{assetLabel} [get]
func (h *WaqfHandler) GetWaqf(c *gin.Context) {
	waqf, err := h.waqfService.GetWaqf(c.Request.Context(), waqfKeyFrom(c))
	if err != nil {
		writeError(c, h.logger, "WaqfHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, waqf))
}

// UpdateWaqf godoc
// @Summary      Patch a waqf record
// @Description  Only the fields present in the payload change
// @Tags         waqfs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        govId       path      int                        true   "Waqf gov id"
// @Param        assetKind   path      string                     true   "Asset kind"
// @Param        assetLabel  path      string                     false  "Asset label"
// @Param        payload     body      service.UpdateWaqfRequest  true   "Patch"
// @Success      200         {object}  response.Response{data=service.WaqfResponse}
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /api/waqfs/{govId}/assets/{assetKind}/{assetLabel} [patch]
func (h *WaqfHandler) UpdateWaqf(c *gin.Context) {
	var req service.UpdateWaqfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	waqf, err := h.waqfService.UpdateWaqf(c.Request.Context(), userIDFrom(c), waqfKeyFrom(c), req)
	if err != nil {
		writeError(c, h.logger, "WaqfHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, waqf))
}

// DeleteWaqf godoc
// @Summary      Delete a waqf record
// @Description  Soft-deletes one asset record of the waqf
// @Tags         waqfs
// @Security     BearerAuth
// @Produce      json
// @Param        govId       path      int     true   "Waqf gov id"
// @Param        assetKind   path      string  true   "Asset kind"
// @Param        assetLabel  path      string  false  "Asset label"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /api/waqfs/{govId}/assets/{assetKind}/{assetLabel} [delete]
func (h *WaqfHandler) DeleteWaqf(c *gin.Context) {
	if err := h.waqfService.DeleteWaqf(c.Request.Context(), userIDFrom(c), waqfKeyFrom(c)); err != nil {
		writeError(c, h.logger, "WaqfHandler", err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Waqf deleted"))
}
