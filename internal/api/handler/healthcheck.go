package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// Pinger verifica a conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

type healthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping
func HealthcheckHandler(version string, db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := healthStatus{
			Status:   "ok",
			Version:  version,
			Database: "up",
			Time:     clock().UTC().Format(time.RFC3339),
		}

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		status := http.StatusOK
		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("healthcheck: banco indisponível")
			body.Status = "degraded"
			body.Database = "down"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, body)
	})
}
