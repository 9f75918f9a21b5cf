package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/seo"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// Sem período informado as telas de SEO comparam os últimos 30 dias
const seoDefaultPeriod = domain.PeriodLast30Days

func GetSeoSummary(service seo.SeoService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "seo-summary", err)
			return
		}

		qr, err := queryRange(r, seoDefaultPeriod)
		if err != nil {
			writeFailure(w, r, "seo-summary", err)
			return
		}

		summary, err := service.GetSummary(r.Context(), tenantID, qr, policy)
		if err != nil {
			writeFailure(w, r, "seo-summary", err)
			return
		}

		writeData(w, summary, newRangeMeta(tenantID, qr))
	})
}

func GetSeoHistory(service seo.SeoService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "seo-history", err)
			return
		}

		days, err := intParam(r, "days")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		history, err := service.GetHistory(r.Context(), tenantID, days, policy)
		if err != nil {
			writeFailure(w, r, "seo-history", err)
			return
		}

		meta := newMeta(tenantID)
		if len(history) > 0 {
			meta.DateRange = &MetaDateRange{From: history[0].Date, To: history[len(history)-1].Date}
		}

		writeData(w, history, meta)
	})
}

// GetKeywordIntent nunca falha por erro de consulta: o serviço devolve lista vazia
func GetKeywordIntent(service seo.SeoService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "seo-keyword-intent", err)
			return
		}

		intents, err := service.GetKeywordIntent(r.Context(), tenantID)
		if err != nil {
			writeFailure(w, r, "seo-keyword-intent", err)
			return
		}

		writeData(w, intents, newMeta(tenantID))
	})
}

func GetTrafficByLocation(service seo.SeoService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "seo-traffic-by-location", err)
			return
		}

		locations, err := service.GetTrafficByLocation(r.Context(), tenantID, policy)
		if err != nil {
			writeFailure(w, r, "seo-traffic-by-location", err)
			return
		}

		writeData(w, locations, newMeta(tenantID))
	})
}

func GetSearchConsoleOverview(service seo.SeoService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "search-console", err)
			return
		}

		qr, err := queryRange(r, seoDefaultPeriod)
		if err != nil {
			writeFailure(w, r, "search-console", err)
			return
		}

		limit, err := intParam(r, "limit")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		siteURL := strings.TrimSpace(r.URL.Query().Get("siteUrl"))

		overview, err := service.GetSearchConsoleOverview(r.Context(), tenantID, qr, siteURL, limit, policy)
		if err != nil {
			writeFailure(w, r, "search-console", err)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id": tenantID,
			"site_url":  siteURL,
			"period":    qr.Period,
		}).Info("search-console: overview gerado com sucesso")

		writeData(w, overview, newRangeMeta(tenantID, qr))
	})
}
