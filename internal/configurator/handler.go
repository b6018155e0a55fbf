package configurator

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

type menuRequest struct {
	Menu int `json:"menu" binding:"required"`
}

type jumpRequest struct {
	Menu int `json:"menu" binding:"required"`
	Step int `json:"step"`
}

type trackRequest struct {
	Menu      int    `json:"menu" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

func (h *Handler) State(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Query("menu"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}

	st, err := h.service.State(c.Request.Context(), middleware.Token(c), menuID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) Next(c *gin.Context) {
	var req menuRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}
	st, err := h.service.Next(c.Request.Context(), middleware.Token(c), req.Menu)
	h.respond(c, st, err)
}

func (h *Handler) Previous(c *gin.Context) {
	var req menuRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}
	st, err := h.service.Previous(c.Request.Context(), middleware.Token(c), req.Menu)
	h.respond(c, st, err)
}

func (h *Handler) Jump(c *gin.Context) {
	var req jumpRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id and step are required"})
		return
	}
	st, err := h.service.JumpTo(c.Request.Context(), middleware.Token(c), req.Menu, req.Step)
	h.respond(c, st, err)
}

func (h *Handler) Track(c *gin.Context) {
	var req trackRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id and product_id are required"})
		return
	}

	if err := h.service.TrackProduct(middleware.Token(c), req.Menu, req.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) AddExtra(c *gin.Context) {
	var req menuRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}

	st, err := h.service.AddExtra(c.Request.Context(), middleware.Token(c), req.Menu)
	if errors.Is(err, ErrNoTrackedProduct) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, st, err)
}

func (h *Handler) Advance(c *gin.Context) {
	var req menuRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}
	st, err := h.service.Advance(c.Request.Context(), middleware.Token(c), req.Menu)
	h.respond(c, st, err)
}

func (h *Handler) Dismiss(c *gin.Context) {
	var req menuRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}
	st, err := h.service.Dismiss(c.Request.Context(), middleware.Token(c), req.Menu)
	h.respond(c, st, err)
}

func (h *Handler) Abandon(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Query("menu"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu id is required"})
		return
	}

	if err := h.service.Abandon(middleware.Token(c), menuID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respond maps service results onto HTTP: validation failures keep the state
// in the body so the client can report required vs. actual, remote failures
// surface as bad gateway.
func (h *Handler) respond(c *gin.Context, st StepState, err error) {
	if err == nil {
		c.JSON(http.StatusOK, st)
		return
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    verr.Error(),
			"required": verr.Required,
			"actual":   verr.Actual,
			"state":    st,
		})
		return
	}
	if errors.Is(err, ErrJumpNotAllowed) || errors.Is(err, ErrStepOutOfRange) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "state": st})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
