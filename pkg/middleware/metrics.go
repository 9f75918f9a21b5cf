package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições usando o padrão da rota como rótulo,
// assim ids de campanha não viram séries novas
func Metrics(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}
