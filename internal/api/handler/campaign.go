package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// ListCampaigns lista as campanhas do tenant com filtros e paginação
func ListCampaigns(service campaign.CampaignService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, err := requestTenant(r)
		if err != nil {
			writeFailure(w, r, "campaigns", err)
			return
		}

		query := r.URL.Query()
		filters := domain.CampaignFilters{
			TenantID:   tenantID,
			Status:     domain.CampaignStatus(strings.ToUpper(strings.TrimSpace(query.Get("status")))),
			Platform:   domain.Platform(strings.ToUpper(strings.TrimSpace(query.Get("platform")))),
			Search:     strings.TrimSpace(query.Get("search")),
			Visibility: policy,
		}

		if filters.Status != "" && !filters.Status.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de campanha inválido", map[string]string{"status": string(filters.Status)})
			return
		}

		if filters.Platform != "" && !filters.Platform.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma inválida", map[string]string{"platform": string(filters.Platform)})
			return
		}

		if filters.Page, err = intParam(r, "page"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if filters.Limit, err = intParam(r, "limit"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if filters.Window, err = optionalWindow(r); err != nil {
			writeFailure(w, r, "campaigns", err)
			return
		}

		page, err := service.ListCampaigns(r.Context(), filters)
		if err != nil {
			writeFailure(w, r, "campaigns", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"tenant_id": tenantID,
			"returned":  len(page.Data),
			"total":     page.Meta.Total,
		}).Info("campaigns: campanhas listadas com sucesso")

		writeData(w, page.Data, page.Meta)
	})
}

// GetCampaign retorna uma campanha com os totais normalizados
func GetCampaign(service campaign.CampaignService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, campaignID, window, ok := campaignRequest(w, r)
		if !ok {
			return
		}

		result, err := service.GetCampaign(r.Context(), tenantID, campaignID, window, policy)
		if err != nil {
			writeFailure(w, r, "campaign", err)
			return
		}

		writeData(w, result, newMeta(tenantID))
	})
}

// GetCampaignMetrics retorna as métricas diárias de uma campanha
func GetCampaignMetrics(service campaign.CampaignService, policy domain.DataVisibilityPolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, campaignID, window, ok := campaignRequest(w, r)
		if !ok {
			return
		}

		result, err := service.GetCampaignMetrics(r.Context(), tenantID, campaignID, window, policy)
		if err != nil {
			writeFailure(w, r, "campaign-metrics", err)
			return
		}

		writeData(w, result, newMeta(tenantID))
	})
}

// campaignRequest valida tenant, id e janela; em caso de erro a resposta já foi escrita
func campaignRequest(w http.ResponseWriter, r *http.Request) (string, string, domain.DateRange, bool) {
	tenantID, err := requestTenant(r)
	if err != nil {
		writeFailure(w, r, "campaign", err)
		return "", "", domain.DateRange{}, false
	}

	campaignID := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if campaignID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
		return "", "", domain.DateRange{}, false
	}

	window, err := optionalWindow(r)
	if err != nil {
		writeFailure(w, r, "campaign", err)
		return "", "", domain.DateRange{}, false
	}

	return tenantID, campaignID, window, true
}
