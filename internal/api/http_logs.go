package api

import (
	"designers/internal/entity/converter"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgListLogsError = "No se pudieron obtener los logs de interacciones LLM"

// ListLogs 返回 LLM 调用历史，最新的在前
func (h *HTTPHandler) ListLogs(c *gin.Context) {
	logs, err := h.repo.ListInteractions(c.Request.Context())
	if err != nil {
		StoreFailure(c, err, msgListLogsError)
		return
	}
	c.JSON(http.StatusOK, converter.InteractionLogsToItems(logs))
}
