package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveLogin("success")
	m.ObserveLogin("success")
	m.ObserveAppointment("Online")
	m.ObserveWizardStep("summary")
	m.ObservePartialProvision()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appointments.WithLabelValues("Online")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.provisionFailed))
}

func TestNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveLogin("failure")
	m.ObserveAppointment("Online")
	m.ObserveWizardStep("intake")
	m.ObservePartialProvision()
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/ping", "204")))
}
