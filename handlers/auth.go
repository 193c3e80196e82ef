// File: handlers/auth.go
package handlers

import (
	"crypto/subtle"
	"net/http"

	"consultify/config"
	"consultify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exchanges the single shared admin credential for a signed
// bearer token.
type AuthHandler struct {
	Cfg    *config.Config
	Tokens *utils.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, tokens *utils.TokenIssuer) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Tokens: tokens}
}

// Login verifies the admin email and password. The failure message never
// reveals which part was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(h.Cfg.AdminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(h.Cfg.AdminPassword))
	if emailOK&passwordOK != 1 {
		utils.JSONFail(c, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	token, err := h.Tokens.Generate(input.Email)
	if err != nil {
		zap.L().Error("Failed to sign admin token", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	utils.JSONSuccess(c, gin.H{"token": token})
}
