package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CitasCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_citas_created_total",
		Help: "Citas agendadas com sucesso.",
	})

	CitasFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_citas_failed_total",
		Help: "Tentativas de agendamento que falharam.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_http_requests_total",
		Help: "Requests HTTP por rota e status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salon_http_request_duration_seconds",
		Help:    "Duração das requests HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Middleware coleta contagem e duração por rota registrada.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
