package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"exam_code": "SIE"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.Equal(t, map[string]interface{}{"exam_code": "SIE"}, resp.Data)
}

func TestCreatedEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, map[string]string{"id": "attempt-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "created", resp.Message)
	assert.Equal(t, map[string]interface{}{"id": "attempt-1"}, resp.Data)
}

func TestErrorEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		fire    func(c *gin.Context)
		code    int
		message string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "invalid count") }, http.StatusBadRequest, "invalid count"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c) }, http.StatusUnauthorized, "Unauthorized"},
		{"not found", func(c *gin.Context) { NotFound(c) }, http.StatusNotFound, "Resource not found"},
		{"internal", func(c *gin.Context) { InternalServerError(c) }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.fire(c)

			assert.Equal(t, tc.code, w.Code)
			resp := decodeResponse(t, w)
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, tc.message, resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}
