package server

import (
	"net/http"
	"whisperwall/auth"
	"whisperwall/errors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	login *auth.AdminLogin
}

func NewAdminHandler(login *auth.AdminLogin) *AdminHandler {
	return &AdminHandler{login: login}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.ErrInvalidPayload)
		return
	}
	token, err := h.login.Login(body.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
