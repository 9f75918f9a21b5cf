package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetMonthlyReport retorna o snapshot consolidado do tenant para um mês fechado
func GetMonthlyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "monthly-report", err)
			return
		}

		month := strings.TrimSpace(r.URL.Query().Get("month"))
		year := strings.TrimSpace(r.URL.Query().Get("year"))
		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		period, err := reporting.PeriodFromMonthYear(month, year)
		if err != nil {
			writeFailure(w, r, "monthly-report", err)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id": tenantID,
			"period":    period,
		}).Info("monthly-report: buscando relatório mensal")

		report, err := service.GetMonthlyReport(r.Context(), tenantID, period)
		if err != nil {
			writeFailure(w, r, "monthly-report", err)
			return
		}

		writeData(w, report, newMeta(tenantID))
	})
}

// GetAvailableReportPeriods retorna os meses que já possuem snapshot
func GetAvailableReportPeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "report-periods", err)
			return
		}

		periods, err := service.GetAvailablePeriods(r.Context(), tenantID)
		if err != nil {
			writeFailure(w, r, "report-periods", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant_id":     tenantID,
			"total_periods": len(periods.Periods),
		}).Info("report-periods: períodos disponíveis recuperados com sucesso")

		writeData(w, periods, newMeta(tenantID))
	})
}
