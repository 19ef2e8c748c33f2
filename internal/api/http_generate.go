package api

import (
	"designers/internal/config"
	"designers/internal/entity/dto"
	"designers/internal/llm"
	"designers/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgPromptRequired   = "Parámetro 'prompt' requerido en el cuerpo de la solicitud."
	msgGenerationFailed = "No se pudo generar texto con el LLM"
)

// GenerateText 同步调用 LLM 生成文本
func (h *HTTPHandler) GenerateText(c *gin.Context) {
	if !h.generationService.Configured() {
		ServiceUnavailable(c, h.notConfiguredMessage())
		return
	}

	var req dto.GenerateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c, err)
		return
	}

	clientIP := service.ClientIP(c.RemoteIP(), c.GetHeader("X-Forwarded-For"))
	text, err := h.generationService.Generate(c.Request.Context(), req.Prompt, clientIP)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.GenerateTextResponse{GeneratedText: text})
	case errors.Is(err, llm.ErrNotConfigured):
		ServiceUnavailable(c, h.notConfiguredMessage())
	case errors.Is(err, llm.ErrEmptyPrompt):
		BadRequest(c, ErrCodeInvalidRequest, msgPromptRequired)
	default:
		ErrorResponseWithDetails(c, http.StatusInternalServerError, ErrCodeGenerationFailed, msgGenerationFailed, err.Error())
	}
}

func (h *HTTPHandler) notConfiguredMessage() string {
	name := "Groq"
	if h.cfg.Driver() == config.LLMDriverVolcengine {
		name = "Volcengine"
	}
	return fmt.Sprintf("La integración con %s no está configurada. Falta %s.", name, h.cfg.ProviderKeyName())
}
