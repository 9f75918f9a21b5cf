package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{name: "Período inválido", err: domain.ErrInvalidPeriod, code: ErrInvalidPeriod, status: http.StatusBadRequest},
		{name: "Intervalo inválido", err: domain.ErrInvalidDateRange, code: ErrInvalidDateRange, status: http.StatusBadRequest},
		{name: "Tenant inválido", err: domain.ErrInvalidTenant, code: ErrInvalidTenant, status: http.StatusBadRequest},
		{name: "Override de tenant proibido", err: domain.ErrForbiddenTenantOverride, code: ErrForbiddenTenant, status: http.StatusForbidden},
		{name: "Campanha não encontrada", err: domain.ErrCampaignNotFound, code: ErrNotFound, status: http.StatusNotFound},
		{name: "Recurso desabilitado", err: domain.ErrFeatureDisabled, code: ErrFeatureDisabled, status: http.StatusNotFound},
		{name: "Banco indisponível", err: domain.Upstream("totais", errors.New("dial tcp")), code: ErrDatabaseOperation, status: http.StatusInternalServerError},
		{name: "Erro envelopado", err: fmt.Errorf("handler: %w", domain.ErrInvalidPeriod), code: ErrInvalidPeriod, status: http.StatusBadRequest},
		{name: "Erro desconhecido", err: errors.New("boom"), code: ErrInternalServer, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomainError(tt.err)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, StatusFor(apiErr.Code))
		})
	}
}

func TestFromDomainError_NaoExpoeCausa(t *testing.T) {
	apiErr := FromDomainError(domain.Upstream("totais", errors.New("password authentication failed")))
	assert.NotContains(t, apiErr.Message, "password")
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrInvalidPeriod, "Período inválido", map[string]string{"period": "90d"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, ErrInvalidPeriod, body["code"])
	assert.Equal(t, "90d", body["details"].(map[string]any)["period"])
}
