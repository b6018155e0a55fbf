package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/toushik018/hardal/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Packages(c *gin.Context) {
	packages, err := h.service.Packages(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) Content(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Query("menu"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}

	m, err := h.service.Content(c.Request.Context(), middleware.Token(c), menuID)
	if err != nil {
		if errors.Is(err, ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) ProductsByCategory(c *gin.Context) {
	var req struct {
		CategoryID string `json:"categoryId" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId is required"})
		return
	}

	products, err := h.service.ProductsByCategory(c.Request.Context(), middleware.Token(c), req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) ProductByID(c *gin.Context) {
	product, err := h.service.ProductByID(c.Request.Context(), middleware.Token(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}
