package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogMiddleware_OmitsClientIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	require.NoError(t, router.SetTrustedProxies(nil))
	router.Use(AccessLogMiddleware(logger))
	router.POST("/api/v1/sightings/:id/confirm", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"applied": true})
	})

	req := httptest.NewRequest("POST", "/api/v1/sightings/5f0c6d9e-1111-4222-8333-444455556666/confirm", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set("X-Forwarded-For", "198.51.100.23")
	req.Header.Set(DeviceTokenHeader, testDeviceToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	line := buf.String()
	assert.NotContains(t, line, "203.0.113.7")
	assert.NotContains(t, line, "198.51.100.23")
	assert.NotContains(t, line, "5f0c6d9e-1111-4222-8333-444455556666")
	assert.NotContains(t, line, testDeviceToken)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/sightings/:id/confirm", entry["route"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestAccessLogMiddleware_Unmatched(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AccessLogMiddleware(logger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/secret/path/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unmatched", entry["route"])
	assert.Equal(t, "warning", entry["level"])
	assert.NotContains(t, buf.String(), "/secret/path/42")
}

func TestRecoveryMiddleware_DoesNotDumpHeaders(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	router.POST("/api/v1/incidents", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest("POST", "/api/v1/incidents", nil)
	req.Header.Set(DeviceTokenHeader, testDeviceToken)
	req.RemoteAddr = "203.0.113.7:51234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Recovered from handler panic")
	assert.Contains(t, buf.String(), "boom")
	assert.NotContains(t, buf.String(), testDeviceToken)
	assert.NotContains(t, buf.String(), "203.0.113.7")
}
