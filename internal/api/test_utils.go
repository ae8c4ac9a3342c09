package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/config"
	"github.com/kitchenpal/backend/internal/testhelpers"
)

// setupTestAPI builds a gin engine with the full /api/v1 route table on
// an isolated in-memory database. No Redis and no predictor.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	router := gin.New()
	SetupAPI(router, db, nil, &config.Config{})
	return router, db
}

// doJSON performs a request with a JSON-encoded body and returns the
// recorder. A nil body sends no payload.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response recorder body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
