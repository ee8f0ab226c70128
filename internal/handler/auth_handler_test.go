package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unalcansuu/kds-jolly/internal/config"
	"github.com/unalcansuu/kds-jolly/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthRouter() *gin.Engine {
	svc := service.NewAuthService(config.AuthConfig{Username: "Cansu", Password: "123"})
	h := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/api/login", h.Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	router := setupAuthRouter()

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(router, "/api/login", `{"username":"Cansu","password":"123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(router, "/api/login", `{"username":"Cansu","password":"456"}`)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Unauthorized", resp["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(router, "/api/login", `{"username":"Cansu"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := postJSON(router, "/api/login", `not-json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
