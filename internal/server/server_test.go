package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/testhelpers"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)

	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: "8080",
	}

	server := New(cfg, db, nil)
	assert.NotNil(t, server)

	t.Run("should answer the health probe", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		server.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	})

	t.Run("should serve the recipe listing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		server.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
