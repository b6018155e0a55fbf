package checkout

import (
	"errors"
	"net/http"

	"github.com/toushik018/hardal/internal/commerce"
	"github.com/toushik018/hardal/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) State(c *gin.Context) {
	st, err := h.service.State(middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) PaymentMethods(c *gin.Context) {
	methods, err := h.service.PaymentMethods(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

func (h *Handler) ShippingMethods(c *gin.Context) {
	methods, err := h.service.ShippingMethods(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipping_methods": methods})
}

func (h *Handler) SetPaymentMethod(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method is required"})
		return
	}

	st, err := h.service.SetPaymentMethod(c.Request.Context(), middleware.Token(c), req.PaymentMethod)
	h.respond(c, st, err)
}

func (h *Handler) SetShippingAddress(c *gin.Context) {
	var addr commerce.Address
	if err := c.BindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address"})
		return
	}

	st, err := h.service.SetShippingAddress(c.Request.Context(), middleware.Token(c), addr)
	h.respond(c, st, err)
}

func (h *Handler) SetPaymentAddress(c *gin.Context) {
	var addr commerce.Address
	if err := c.BindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address"})
		return
	}

	st, err := h.service.SetPaymentAddress(c.Request.Context(), middleware.Token(c), addr)
	h.respond(c, st, err)
}

func (h *Handler) SetShippingMethod(c *gin.Context) {
	var req struct {
		ShippingMethod string `json:"shipping_method" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shipping_method is required"})
		return
	}

	st, err := h.service.SetShippingMethod(c.Request.Context(), middleware.Token(c), req.ShippingMethod)
	h.respond(c, st, err)
}

func (h *Handler) Back(c *gin.Context) {
	st, err := h.service.Back(middleware.Token(c))
	h.respond(c, st, err)
}

func (h *Handler) Confirm(c *gin.Context) {
	st, err := h.service.Confirm(middleware.Token(c))
	h.respond(c, st, err)
}

func (h *Handler) respond(c *gin.Context, st *State, err error) {
	if err == nil {
		c.JSON(http.StatusOK, st)
		return
	}

	var wrong *ErrWrongStep
	if errors.As(err, &wrong) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": st})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "state": st})
}
