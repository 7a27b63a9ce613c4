package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ClinicDesk/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetDefaultOptions(t *testing.T) {
	cfg := config.Config{
		Port:              "5000",
		MongoURI:          "mongodb://localhost:27017",
		MongoDB:           "clinic",
		CacheEnabled:      true,
		RedisAddr:         "localhost:6379",
		JobsEnabled:       false,
		MigrationsEnabled: true,
		TokenTTL:          time.Hour,
	}
	opts := GetDefaultOptions(cfg)

	assert.True(t, opts.MongoEnabled)
	assert.True(t, opts.WebServerEnabled)
	assert.True(t, opts.CacheEnabled)
	assert.True(t, opts.MigrationEnabled)
	assert.False(t, opts.JobsEnabled)
	assert.Equal(t, "5000", opts.WebServerPort)
	assert.Equal(t, "clinic", opts.MongoDatabase)
	assert.Equal(t, "localhost:6379", opts.RedisAddr)
}

func TestNewEngine_RunsPreHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewEngine(func(r *gin.Engine) {
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		r.GET("/panic", func(c *gin.Context) { panic("boom") })
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
