package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// clock resolve os períodos relativos (7d, 30d, ...) das requisições
var clock = time.Now

// Response é o envelope comum das respostas de sucesso
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Meta    any  `json:"meta,omitempty"`
}

type MetaDateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ResponseMeta struct {
	Period      domain.Period  `json:"period,omitempty"`
	DateRange   *MetaDateRange `json:"dateRange,omitempty"`
	TenantID    string         `json:"tenantId"`
	GeneratedAt string         `json:"generatedAt"`
}

func newMeta(tenantID string) ResponseMeta {
	return ResponseMeta{
		TenantID:    tenantID,
		GeneratedAt: clock().UTC().Format(time.RFC3339),
	}
}

func newRangeMeta(tenantID string, qr domain.QueryRange) ResponseMeta {
	meta := newMeta(tenantID)
	meta.Period = qr.Period
	meta.DateRange = &MetaDateRange{From: qr.Current.From(), To: qr.Current.To()}
	return meta
}

// writeJSON codifica antes de escrever o status; falha de codificação vira 500
func writeJSON(w http.ResponseWriter, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(raw, '\n')); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}

func writeData(w http.ResponseWriter, data any, meta any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data, Meta: meta})
}

// writeFailure registra e responde um erro vindo dos casos de uso
func writeFailure(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	if errors.Is(err, authenticating.ErrInvalidToken) {
		logger.Warn(prefix + ": usuário não autenticado")
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return
	}

	apiErr := apiErrors.FromDomainError(err)
	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error(prefix + ": erro ao processar requisição")
	} else {
		logger.Warn(prefix + ": requisição rejeitada")
	}

	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}

func claimsFromContext(r *http.Request) *domain.Claims {
	claims, _ := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims
}

// requestTenant devolve o tenant efetivo da requisição, aplicando o override de tenantId
func requestTenant(r *http.Request) (string, error) {
	return authenticating.ResolveTenant(claimsFromContext(r), r.URL.Query().Get("tenantId"))
}

func periodParams(r *http.Request) domain.PeriodParams {
	query := r.URL.Query()
	return domain.PeriodParams{
		Period:    query.Get("period"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}
}

func queryRange(r *http.Request, fallback domain.Period) (domain.QueryRange, error) {
	return domain.ResolveQueryRangeWithDefault(periodParams(r), fallback, clock().UTC())
}

// optionalWindow devolve um intervalo vazio quando startDate e endDate não são informados
func optionalWindow(r *http.Request) (domain.DateRange, error) {
	params := periodParams(r)
	if !params.HasExplicitRange() {
		return domain.DateRange{}, nil
	}
	return domain.ParseDateRange(params.StartDate, params.EndDate)
}

// intParam lê um inteiro não negativo da query; ausente devolve zero
func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.Errorf("parâmetro %s inválido: %q", name, raw)
	}
	return value, nil
}
