package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performResponse(t *testing.T, send func(c *gin.Context)) (*httptest.ResponseRecorder, StandardResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	send(c)

	var body StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := performResponse(t, func(c *gin.Context) {
		Success(c, "done", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "done", body.Message)
	assert.NotNil(t, body.Data)
}

func TestValidationErrorEnvelope(t *testing.T) {
	w, body := performResponse(t, func(c *gin.Context) {
		ValidationError(c, "Password must contain at least one number", nil)
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Password must contain at least one number", body.Message)
	assert.Nil(t, body.Data)
}

func TestErrorEnvelopeCarriesDetail(t *testing.T) {
	w, body := performResponse(t, func(c *gin.Context) {
		BadRequest(c, "Invalid request", "quantity missing")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body.Status)
	require.NotNil(t, body.Data)
}
