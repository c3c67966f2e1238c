package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boardy/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() (*gin.Engine, *logtest.Hook) {
	gin.SetMode(gin.TestMode)
	logger, hook := logtest.NewNullLogger()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.GET("/ok/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r, hook
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		path  string
		level logrus.Level
	}{
		{"/ok/1", logrus.InfoLevel},
		{"/missing", logrus.WarnLevel},
		{"/boom", logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			// Arrange
			router, hook := setupRouter()
			req, _ := http.NewRequest("GET", tt.path, nil)

			// Act
			router.ServeHTTP(httptest.NewRecorder(), req)

			// Assert
			require.Len(t, hook.Entries, 1)
			assert.Equal(t, tt.level, hook.LastEntry().Level)
			assert.Equal(t, "GET", hook.LastEntry().Data["method"])
		})
	}
}

func TestRequestLogger_UsesRoutePattern(t *testing.T) {
	router, hook := setupRouter()
	req, _ := http.NewRequest("GET", "/ok/task-1", nil)

	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "/ok/:id", hook.LastEntry().Data["path"])
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])
}
