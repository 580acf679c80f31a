package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler handles the unauthenticated landing endpoint
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET /
// @Summary Landing endpoint
// @Description Returns a hello message; useful as a smoke check
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string "Hello message"
// @Router / [get]
func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}
