package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/serializer"
	"github.com/workdesk/workdesk/internal/modules/service"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: s}
}

// GetSettings godoc
//
//	@Summary		Get company settings
//	@Description	Return the company settings, creating them with defaults on first access
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=model.CompanySettings}
//	@Router			/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	cs, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: cs})
}

// UpdateSettings godoc
//
//	@Summary		Update company settings
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	model.CompanySettingsPatch	true	"Fields to change"
//	@Success		200	{object}	serializer.Response{data=model.CompanySettings}
//	@Failure		400	{object}	serializer.Response{data=[]model.FieldError}
//	@Router			/settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	req := model.CompanySettingsPatch{}
	if err := c.ShouldBindWith(&req, jsonBody{}); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	cs, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: cs})
}
