package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

type SettingsHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewSettingsHandler registers the AI-provider preference and theme routes.
func NewSettingsHandler(api *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &SettingsHandler{resumeUC: resumeUC}

	settings := api.Group("/settings")
	{
		settings.GET("/ai", handler.GetAIConfig)
		settings.PUT("/ai", handler.UpdateAIConfig)
		settings.GET("/theme", handler.GetTheme)
		settings.PUT("/theme", handler.SetTheme)
	}
}

// GetAIConfig godoc
// @Summary      Get the AI provider preference
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /settings/ai [get]
func (h *SettingsHandler) GetAIConfig(c *gin.Context) {
	cfg := h.resumeUC.GetAIConfig(c.Request.Context())
	response.Success(c, http.StatusOK, "AI config retrieved", cfg)
}

// UpdateAIConfig godoc
// @Summary      Update the AI provider preference
// @Description  Merges the provided fields into the stored config; omitted fields are untouched.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        patch  body      domain.AIConfigPatch  true  "Fields to update"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /settings/ai [put]
func (h *SettingsHandler) UpdateAIConfig(c *gin.Context) {
	var patch domain.AIConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cfg, err := h.resumeUC.UpdateAIConfig(c.Request.Context(), patch)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	response.Success(c, http.StatusOK, "AI config updated", cfg)
}

type themePayload struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *SettingsHandler) GetTheme(c *gin.Context) {
	response.Success(c, http.StatusOK, "Theme retrieved", themePayload{Theme: h.resumeUC.GetTheme(c.Request.Context())})
}

func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req themePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.resumeUC.SetTheme(c.Request.Context(), req.Theme); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	response.Success(c, http.StatusOK, "Theme updated", nil)
}
