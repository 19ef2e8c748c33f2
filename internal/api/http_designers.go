package api

import (
	"designers/internal/database"
	"designers/internal/entity/converter"
	"designers/internal/entity/dto"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgDesignerNotFound   = "Diseñador no encontrado"
	msgQueryRequired      = "Parámetro 'query' requerido"
	msgDesignerCreated    = "Diseñador añadido con éxito"
	msgListDesignersError = "No se pudieron obtener los diseñadores"
	msgGetDesignerError   = "No se pudo obtener el diseñador"
	msgSearchError        = "No se pudo realizar la búsqueda"
	msgCreateError        = "No se pudo añadir el diseñador"
)

// ListDesigners 获取全部设计师
func (h *HTTPHandler) ListDesigners(c *gin.Context) {
	designers, err := h.repo.ListDesigners(c.Request.Context())
	if err != nil {
		StoreFailure(c, err, msgListDesignersError)
		return
	}
	c.JSON(http.StatusOK, converter.DesignersToDTOs(designers))
}

// GetDesigner 按 id 获取设计师
func (h *HTTPHandler) GetDesigner(c *gin.Context) {
	// 非整数 id 与不存在的 id 一样返回 404
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		NotFound(c, msgDesignerNotFound)
		return
	}

	designer, err := h.repo.GetDesigner(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			NotFound(c, msgDesignerNotFound)
			return
		}
		StoreFailure(c, err, msgGetDesignerError)
		return
	}
	c.JSON(http.StatusOK, converter.DesignerToDTO(designer))
}

// SearchDesigners 按名称、国籍或风格模糊搜索
func (h *HTTPHandler) SearchDesigners(c *gin.Context) {
	term := strings.TrimSpace(c.Query("query"))
	if term == "" {
		MessageResponse(c, http.StatusBadRequest, msgQueryRequired)
		return
	}

	designers, err := h.repo.SearchDesigners(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, database.ErrEmptySearchTerm) {
			MessageResponse(c, http.StatusBadRequest, msgQueryRequired)
			return
		}
		StoreFailure(c, err, msgSearchError)
		return
	}
	c.JSON(http.StatusOK, converter.DesignersToDTOs(designers))
}

// CreateDesigner 新增设计师
func (h *HTTPHandler) CreateDesigner(c *gin.Context) {
	// 原样回显提交的 JSON 对象，包括未知字段
	var payload map[string]any
	if err := c.ShouldBindBodyWithJSON(&payload); err != nil {
		InvalidPayload(c, err)
		return
	}
	var req dto.CreateDesignerRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		InvalidPayload(c, err)
		return
	}
	if field := req.MissingField(); field != "" {
		MissingField(c, field)
		return
	}

	designer, err := h.repo.CreateDesigner(c.Request.Context(), req)
	if err != nil {
		var missing *database.MissingFieldError
		if errors.As(err, &missing) {
			MissingField(c, missing.Field)
			return
		}
		StoreFailure(c, err, msgCreateError)
		return
	}

	logrus.WithFields(logrus.Fields{
		"id":   designer.ID,
		"name": designer.Name,
	}).Info("designer created")

	c.JSON(http.StatusCreated, dto.CreateDesignerResponse{
		Message:  msgDesignerCreated,
		ID:       designer.ID,
		Designer: payload,
	})
}
