package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

// ServiceName is reported by the health probe.
const ServiceName = "resume-ai-polisher"

type PolishHandler struct {
	polishUC domain.PolishUsecase
	registry domain.ProviderRegistry
}

// NewPolishHandler registers the polish proxy routes (public, no auth).
func NewPolishHandler(api *gin.RouterGroup, polishUC domain.PolishUsecase, registry domain.ProviderRegistry) {
	handler := &PolishHandler{
		polishUC: polishUC,
		registry: registry,
	}

	api.POST("/polish", handler.Polish)
	api.GET("/health", handler.Health)
	api.GET("/providers", handler.Providers)
}

// The polish endpoints keep the exact wire shapes the browser client
// already speaks, not the envelope the CRUD API uses.

type polishSuccessResponse struct {
	Success      bool   `json:"success"`
	PolishedText string `json:"polishedText"`
}

type polishErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Polish godoc
// @Summary      Polish resume text
// @Description  Forwards text to the selected AI provider and returns the rewritten version. Providers without a configured credential answer with a mock notice.
// @Tags         polish
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PolishRequest  true  "Polish Request"
// @Success      200      {object}  polishSuccessResponse
// @Failure      400      {object}  polishErrorResponse
// @Failure      500      {object}  polishErrorResponse
// @Failure      502      {object}  polishErrorResponse
// @Router       /polish [post]
func (h *PolishHandler) Polish(c *gin.Context) {
	var req domain.PolishRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, polishErrorResponse{Error: "Invalid request body"})
		return
	}

	polished, err := h.polishUC.Polish(c.Request.Context(), &req)
	if err != nil {
		if c.Request.Context().Err() != nil {
			// client canceled; nobody is listening for a body
			c.Abort()
			return
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, polishErrorResponse{Error: appErr.Message, Details: appErr.Detail})
			return
		}
		c.JSON(http.StatusInternalServerError, polishErrorResponse{Error: "Failed to process AI request"})
		return
	}

	c.JSON(http.StatusOK, polishSuccessResponse{Success: true, PolishedText: polished})
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health godoc
// @Summary      Health probe
// @Tags         polish
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *PolishHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Service: ServiceName})
}

type providerInfo struct {
	ID    domain.ProviderID   `json:"id"`
	Model string              `json:"model"`
	Mode  domain.ProviderMode `json:"mode"`
}

// Providers godoc
// @Summary      List supported AI providers
// @Description  Reports each provider's model id and whether it runs live or in mock mode. Credentials are never exposed.
// @Tags         polish
// @Produce      json
// @Success      200  {array}  providerInfo
// @Router       /providers [get]
func (h *PolishHandler) Providers(c *gin.Context) {
	providers := h.registry.List()
	out := make([]providerInfo, 0, len(providers))
	for _, p := range providers {
		out = append(out, providerInfo{ID: p.ID, Model: p.ModelID, Mode: p.Mode()})
	}
	c.JSON(http.StatusOK, out)
}
