package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetDashboardOverview retorna resumo, variações, tendência diária e campanhas recentes do período
func GetDashboardOverview(service dashboard.Overviewer, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "dashboard-overview", err)
			return
		}

		qr, err := queryRange(r, domain.DefaultPeriod)
		if err != nil {
			writeFailure(w, r, "dashboard-overview", err)
			return
		}

		overview, err := service.GetOverview(r.Context(), tenantID, qr, policy)
		if err != nil {
			writeFailure(w, r, "dashboard-overview", err)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id":        tenantID,
			"period":           qr.Period,
			"recent_campaigns": len(overview.RecentCampaigns),
		}).Info("dashboard-overview: overview gerado com sucesso")

		writeData(w, overview, newRangeMeta(tenantID, qr))
	})
}
