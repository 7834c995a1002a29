package server

import (
	"net"
	"net/http"
	"strings"

	"github.com/kevinms/leakybucket-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/numerics/network/httputil"
	"github.com/rs/cors"
)

var rateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "api_rate_limited_requests_total",
	Help: "The number of API requests rejected because the client exceeded its rate limit.",
})

// CorsHandler sets the cors settings on api endpoints.
func CorsHandler(allowOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowOrigins,
		AllowedMethods:   []string{http.MethodPost, http.MethodGet, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
		MaxAge:           600,
		AllowedHeaders:   []string{"*"},
	})
}

// RateLimitHandler rejects requests with 429 once a client drains its bucket.
// Clients are told apart by remote IP.
func RateLimitHandler(collector *leakybucket.Collector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if collector.Add(key, 1) < 1 {
			rateLimitedRequests.Inc()
			log.WithField("client", key).Debug("Rate limited request")
			httputil.HandleError(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
