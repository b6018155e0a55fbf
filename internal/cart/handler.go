package cart

import (
	"context"
	"errors"
	"net/http"

	"github.com/toushik018/hardal/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type lineRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Increment(c *gin.Context) {
	h.mutateLine(c, h.service.Increment)
}

func (h *Handler) Decrement(c *gin.Context) {
	h.mutateLine(c, h.service.Decrement)
}

func (h *Handler) Remove(c *gin.Context) {
	h.mutateLine(c, h.service.Remove)
}

func (h *Handler) DeletePackage(c *gin.Context) {
	view, err := h.service.DeletePackage(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": view})
}

func (h *Handler) Clear(c *gin.Context) {
	view, err := h.service.Clear(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": view})
}

func (h *Handler) mutateLine(c *gin.Context, mutate func(ctx context.Context, token, cartID string) (View, error)) {
	var req lineRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
		return
	}

	view, err := mutate(c.Request.Context(), middleware.Token(c), req.CartID)
	if err != nil {
		if errors.Is(err, ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": view})
}
