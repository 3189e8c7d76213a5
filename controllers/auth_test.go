package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocheck-backend/utils"
)

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	r.POST("/auth/logout", Logout)
	r.GET("/auth/me", utils.AuthMiddleware(), Me)
	return r
}

func TestAuthFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	useTestDB(t)
	router := setupAuthRouter()

	register := map[string]any{
		"email":    "admin@oficina.com",
		"password": "senha123!",
		"fullName": "Admin da Oficina",
		"role":     "admin",
	}

	w := postJSON(router, "POST", "/auth/register", register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("duplicate email rejected", func(t *testing.T) {
		w := postJSON(router, "POST", "/auth/register", register)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login and current-user lookup", func(t *testing.T) {
		w := postJSON(router, "POST", "/auth/login", map[string]any{
			"email":    "admin@oficina.com",
			"password": "senha123!",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		// The login response also sets the session cookie the gate reads.
		cookies := w.Result().Cookies()
		var found bool
		for _, c := range cookies {
			if c.Name == "token" && c.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "login must set the session cookie")

		w = postJSON(router, "GET", "/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		req, _ := http.NewRequest("GET", "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@oficina.com")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(router, "POST", "/auth/login", map[string]any{
			"email":    "admin@oficina.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email gets the same generic error", func(t *testing.T) {
		w := postJSON(router, "POST", "/auth/login", map[string]any{
			"email":    "nobody@oficina.com",
			"password": "whatever1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}
