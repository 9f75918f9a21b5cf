package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetAiInsights retorna os KPIs de negócio, alertas, recomendações e projeções derivados do overview
func GetAiInsights(service insighting.Insighter, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "ai-insights", err)
			return
		}

		qr, err := queryRange(r, domain.DefaultPeriod)
		if err != nil {
			writeFailure(w, r, "ai-insights", err)
			return
		}

		var budgetAdjustment *float64
		if raw := strings.TrimSpace(r.URL.Query().Get("budgetAdjustment")); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "budgetAdjustment deve ser numérico", map[string]string{"budgetAdjustment": raw})
				return
			}
			budgetAdjustment = &value
		}

		insights, err := service.GetAiInsights(r.Context(), tenantID, qr, policy, budgetAdjustment)
		if err != nil {
			writeFailure(w, r, "ai-insights", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant_id": tenantID,
			"period":    qr.Period,
			"anomalies": len(insights.Anomalies),
		}).Info("ai-insights: insights gerados com sucesso")

		writeData(w, insights, newRangeMeta(tenantID, qr))
	})
}
