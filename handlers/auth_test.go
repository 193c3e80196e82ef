package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultify/config"
	"consultify/utils"
)

func newLoginRouter(t *testing.T) (*gin.Engine, *utils.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AdminEmail:    "admin@example.com",
		AdminPassword: "correct-horse",
		JWTSecret:     "test-secret",
	}
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, time.Hour)

	router := gin.New()
	router.POST("/api/admin/login", NewAuthHandler(cfg, tokens).Login)
	return router, tokens
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	router, tokens := newLoginRouter(t)

	w := postLogin(router, `{"email":"admin@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	email, err := tokens.ExtractEmail(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	router, _ := newLoginRouter(t)

	wrongEmail := postLogin(router, `{"email":"other@example.com","password":"correct-horse"}`)
	wrongPassword := postLogin(router, `{"email":"admin@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongEmail.Body.String(), wrongPassword.Body.String(),
		"the failure response never reveals which part was wrong")
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	router, _ := newLoginRouter(t)
	w := postLogin(router, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
